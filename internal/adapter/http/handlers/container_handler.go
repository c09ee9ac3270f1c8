package handlers

import (
	"errors"
	"net/http"

	request "warebill/internal/adapter/http/dto/request"
	response "warebill/internal/adapter/http/dto/response"
	"warebill/internal/domain/entities"
	"warebill/internal/usecase"
	"warebill/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContainerPayload = pkg.NewDomainErrorSimple("INVALID_CONTAINER_INPUT", "Invalid container payload", http.StatusBadRequest)
)

// ContainerHandler handles HTTP requests for the container registry.

type ContainerHandler struct {
	usecase usecase.IContainerUseCase
}

func NewContainerHandler(uc usecase.IContainerUseCase) *ContainerHandler {
	return &ContainerHandler{usecase: uc}
}

// CreateContainer resolves a scanned code, registering the container on
// first sight. Repeat scans return the existing container.
func (h *ContainerHandler) CreateContainer(c *gin.Context) {
	var payload request.CreateContainerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContainerPayload.HTTPStatus, errInvalidContainerPayload.ToHTTPError())
		return
	}

	kind := entities.ContainerKind(payload.ResolveKind())
	if kind != entities.ContainerKindParent && kind != entities.ContainerKindChild {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_KIND", "Kind must be parent or child", http.StatusBadRequest).ToHTTPError())
		return
	}

	container, err := h.usecase.ResolveOrCreate(c.Request.Context(), payload.ResolveCode(), kind)
	if err != nil {
		appErr := mapContainerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContainer(container))
}

// AttachChild stacks a child unit onto the parent container from the path.
func (h *ContainerHandler) AttachChild(c *gin.Context) {
	var payload request.AttachChildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContainerPayload.HTTPStatus, errInvalidContainerPayload.ToHTTPError())
		return
	}

	parent, err := h.usecase.AttachChild(c.Request.Context(), c.Param("parent_code"), payload.ResolveCode(), payload.WeightKg)
	if err != nil {
		appErr := mapContainerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContainer(parent))
}

func mapContainerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContainerCode), errors.Is(err, usecase.ErrInvalidContainerKind),
		errors.Is(err, usecase.ErrInvalidChildWeight):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContainerKindMismatch):
		return pkg.NewDomainErrorSimple("CONTAINER_KIND_MISMATCH", "Container exists with a different kind", http.StatusConflict)
	case errors.Is(err, usecase.ErrChildAlreadyAttached):
		return pkg.NewDomainErrorSimple("CHILD_ALREADY_ATTACHED", "Child is already attached to another parent", http.StatusConflict)
	case errors.Is(err, usecase.ErrContainerNotFound):
		return pkg.NewDomainErrorSimple("CONTAINER_NOT_FOUND", "Container not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
