package handlers

import (
	"errors"
	"net/http"

	request "warebill/internal/adapter/http/dto/request"
	response "warebill/internal/adapter/http/dto/response"
	"warebill/internal/usecase"
	"warebill/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
)

// BillHandler handles HTTP requests for the bill lifecycle.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// CreateBill opens a new bill with an immutable capacity.
func (h *BillHandler) CreateBill(c *gin.Context) {
	var payload request.CreateBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.Create(c.Request.Context(), payload.ResolveBillCode(), payload.Capacity)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.usecase.GetByID(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// CompleteBill is the terminal transition; completed bills refuse links and
// release their containers for future bills.
func (h *BillHandler) CompleteBill(c *gin.Context) {
	bill, err := h.usecase.Complete(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillCode), errors.Is(err, usecase.ErrInvalidBillCapacity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillCodeTaken):
		return pkg.NewDomainErrorSimple("BILL_CODE_TAKEN", "Bill code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillAlreadyCompleted):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_COMPLETED", "Bill is already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
