package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repairtrack/internal/adapter/http/handlers/mocks"
	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrInvalidRequestInput)

		body := `{"customer_id":"cust-1","customer_name":"   ","product_name":"Espresso Machine","fault_description":"does not heat"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		now := time.Now().UTC()
		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{
			ID:           "req-1",
			CustomerID:   "cust-1",
			CustomerName: "Maria Souza",
			Status:       entities.StatusReceived,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, nil)

		body := `{"customer_id":"cust-1","customer_name":"Maria Souza","product_name":"Espresso Machine","fault_description":"does not heat"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resBody)
		if resBody["request_id"] != "req-1" || resBody["status"] != "received" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if resBody["progress"] != float64(0) {
			t.Fatalf("expected progress 0, got %v", resBody["progress"])
		}
	})
}

func TestServiceRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		uc.EXPECT().GetRequest(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		uc.EXPECT().GetRequest(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.StatusQualityCheck}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resBody)
		if resBody["status"] != "quality_check" || resBody["progress"] != float64(4) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIStatusWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(nil, workflow)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"actor":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIStatusWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(nil, workflow)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/status", h.UpdateStatus)

		workflow.EXPECT().SetStatus(gomock.Any(), "req-1", entities.RequestStatus("melting"), "admin").
			Return(entities.ServiceRequest{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"melting","actor":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIStatusWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(nil, workflow)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/status", h.UpdateStatus)

		workflow.EXPECT().SetStatus(gomock.Any(), "req-1", entities.StatusDispatched, "admin").
			Return(entities.ServiceRequest{ID: "req-1", Status: entities.StatusDispatched}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/status", bytes.NewBufferString(`{"status":"dispatched","actor":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resBody map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resBody)
		if resBody["status"] != "dispatched" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_AppendEPREntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/epr", h.AppendEPREntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/epr", bytes.NewBufferString(`{"details":"no action"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/epr", h.AppendEPREntry)

		uc.EXPECT().AppendEPREntry(gomock.Any(), "req-1", gomock.AssignableToTypeOf(entities.EPREntry{}), "tech").DoAndReturn(
			func(_ any, id string, e entities.EPREntry, _ string) (entities.ServiceRequest, error) {
				if e.Action != "sent to partner" || e.Status != "in_transit" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return entities.ServiceRequest{ID: id, EPRTimeline: []entities.EPREntry{e}}, nil
			},
		)

		body := `{"actor":"tech","action":"sent to partner","status":"in_transit"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/epr", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapServiceRequestError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidRequestID, http.StatusBadRequest},
		{usecase.ErrInvalidRequestInput, http.StatusBadRequest},
		{usecase.ErrInvalidEPREntry, http.StatusBadRequest},
		{usecase.ErrInvalidStatus, http.StatusBadRequest},
		{usecase.ErrRequestNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapServiceRequestError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
