package handlers

import (
	"net/http"

	response "warebill/internal/adapter/http/dto/response"
	"warebill/internal/usecase/interfaces"
	"warebill/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the append-only link audit trail.

type AuditHandler struct {
	audit interfaces.IAuditRepository
}

func NewAuditHandler(audit interfaces.IAuditRepository) *AuditHandler {
	return &AuditHandler{audit: audit}
}

func (h *AuditHandler) ListByBill(c *gin.Context) {
	entries, err := h.audit.ListByBill(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}

func (h *AuditHandler) ListByContainer(c *gin.Context) {
	entries, err := h.audit.ListByContainer(c.Request.Context(), c.Param("container_id"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}
