package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"warebill/internal/adapter/http/handlers/mocks"
	"warebill/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLinkingHandler_LinkContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkingUseCase(ctrl)
		h := NewLinkingHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:bill_id/links", h.LinkContainer)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/links", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("actor header reaches the engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkingUseCase(ctrl)
		h := NewLinkingHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:bill_id/links", h.LinkContainer)

		uc.EXPECT().LinkContainerToBill(gomock.Any(), "bill-1", "SB12345", "operator-7").
			Return(entities.LinkResult{Outcome: entities.OutcomeSuccess, LinkedCountAfter: 1, Capacity: 10})

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/links", bytes.NewBufferString(`{"container_code":"SB12345"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Id", "operator-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["outcome"] != "success" || body["linked_count_after"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("outcome picks the status code", func(t *testing.T) {
		cases := []struct {
			outcome entities.LinkOutcome
			status  int
		}{
			{entities.OutcomeSuccess, http.StatusCreated},
			{entities.OutcomeAlreadyLinkedSameBill, http.StatusOK},
			{entities.OutcomeContainerNotFound, http.StatusNotFound},
			{entities.OutcomeBillNotFound, http.StatusNotFound},
			{entities.OutcomeWrongKind, http.StatusBadRequest},
			{entities.OutcomeBillClosed, http.StatusConflict},
			{entities.OutcomeAlreadyLinkedOther, http.StatusConflict},
			{entities.OutcomeCapacityReached, http.StatusConflict},
			{entities.OutcomeLockTimeout, http.StatusServiceUnavailable},
			{entities.OutcomeStorageError, http.StatusInternalServerError},
		}
		for _, c := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockILinkingUseCase(ctrl)
			h := NewLinkingHandler(uc)

			r := gin.New()
			r.POST("/v1/bills/:bill_id/links", h.LinkContainer)

			uc.EXPECT().LinkContainerToBill(gomock.Any(), "bill-1", "SB12345", "").
				Return(entities.LinkResult{Outcome: c.outcome})

			req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/links", bytes.NewBufferString(`{"container_code":"SB12345"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != c.status {
				t.Errorf("outcome %s: expected %d, got %d", c.outcome, c.status, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestLinkingHandler_UnlinkContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unlinked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkingUseCase(ctrl)
		h := NewLinkingHandler(uc)

		r := gin.New()
		r.DELETE("/v1/bills/:bill_id/links/:container_code", h.UnlinkContainer)

		uc.EXPECT().UnlinkContainerFromBill(gomock.Any(), "bill-1", "SB12345", "operator-7").
			Return(entities.LinkResult{Outcome: entities.OutcomeUnlinked})

		req := httptest.NewRequest(http.MethodDelete, "/v1/bills/bill-1/links/SB12345", nil)
		req.Header.Set("X-Actor-Id", "operator-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not linked maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILinkingUseCase(ctrl)
		h := NewLinkingHandler(uc)

		r := gin.New()
		r.DELETE("/v1/bills/:bill_id/links/:container_code", h.UnlinkContainer)

		uc.EXPECT().UnlinkContainerFromBill(gomock.Any(), "bill-1", "SB12345", "").
			Return(entities.LinkResult{Outcome: entities.OutcomeNotLinked})

		req := httptest.NewRequest(http.MethodDelete, "/v1/bills/bill-1/links/SB12345", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
