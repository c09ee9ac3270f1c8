package handlers

import (
	"net/http"

	request "warebill/internal/adapter/http/dto/request"
	response "warebill/internal/adapter/http/dto/response"
	"warebill/internal/domain/entities"
	"warebill/internal/usecase"
	"warebill/pkg"

	"github.com/gin-gonic/gin"
)

const actorHeader = "X-Actor-Id"

var (
	errInvalidLinkPayload = pkg.NewDomainErrorSimple("INVALID_LINK_INPUT", "Invalid link payload", http.StatusBadRequest)
)

// LinkingHandler exposes the linking engine. Unlike the other handlers it
// never maps errors: the engine always returns a LinkResult, and the outcome
// alone picks the HTTP status.

type LinkingHandler struct {
	usecase usecase.ILinkingUseCase
}

func NewLinkingHandler(uc usecase.ILinkingUseCase) *LinkingHandler {
	return &LinkingHandler{usecase: uc}
}

// LinkContainer links the scanned container to the bill from the path.
func (h *LinkingHandler) LinkContainer(c *gin.Context) {
	var payload request.LinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinkPayload.HTTPStatus, errInvalidLinkPayload.ToHTTPError())
		return
	}

	result := h.usecase.LinkContainerToBill(
		c.Request.Context(),
		c.Param("bill_id"),
		payload.ResolveContainerCode(),
		c.GetHeader(actorHeader),
	)
	c.JSON(statusForOutcome(result.Outcome), response.FromLinkResult(result))
}

// UnlinkContainer removes the assignment named by the path.
func (h *LinkingHandler) UnlinkContainer(c *gin.Context) {
	result := h.usecase.UnlinkContainerFromBill(
		c.Request.Context(),
		c.Param("bill_id"),
		c.Param("container_code"),
		c.GetHeader(actorHeader),
	)
	c.JSON(statusForOutcome(result.Outcome), response.FromLinkResult(result))
}

func statusForOutcome(outcome entities.LinkOutcome) int {
	switch outcome {
	case entities.OutcomeSuccess:
		return http.StatusCreated
	case entities.OutcomeUnlinked, entities.OutcomeAlreadyLinkedSameBill:
		return http.StatusOK
	case entities.OutcomeContainerNotFound, entities.OutcomeBillNotFound:
		return http.StatusNotFound
	case entities.OutcomeWrongKind:
		return http.StatusBadRequest
	case entities.OutcomeBillClosed, entities.OutcomeAlreadyLinkedOther,
		entities.OutcomeCapacityReached, entities.OutcomeNotLinked:
		return http.StatusConflict
	case entities.OutcomeLockTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
