package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repairtrack/internal/domain/entities"
	mock_interfaces "repairtrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validIntakeInput() CreateRequestInput {
	return CreateRequestInput{
		CustomerID:       "cust-1",
		CustomerName:     "Maria Souza",
		ProductName:      "Espresso Machine",
		SerialNumber:     "SN-001",
		FaultDescription: "does not heat",
		AssignedTeam:     "bench-2",
	}
}

func TestServiceRequestUseCase_CreateRequest(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		for _, mutate := range []func(*CreateRequestInput){
			func(in *CreateRequestInput) { in.CustomerID = "  " },
			func(in *CreateRequestInput) { in.CustomerName = "" },
			func(in *CreateRequestInput) { in.ProductName = "" },
			func(in *CreateRequestInput) { in.FaultDescription = "   " },
		} {
			in := validIntakeInput()
			mutate(&in)
			_, err := uc.CreateRequest(context.Background(), in)
			if !errors.Is(err, ErrInvalidRequestInput) {
				t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
			}
		}
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		in := validIntakeInput()
		in.SerialNumber = ""
		in.AssignedTeam = ""

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				return r, nil
			},
		)

		res, err := uc.CreateRequest(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SerialNumber != "" || res.AssignedTeam != "" {
			t.Fatalf("expected optional fields to stay empty: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, errors.New("db"))

		_, err := uc.CreateRequest(context.Background(), validIntakeInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success records creation audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		auditRepo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, auditRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID == "" || r.Status != entities.StatusReceived {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if r.PaymentCompleted || r.Quote != nil {
					t.Fatalf("new request must start unsettled and unquoted: %+v", r)
				}
				return r, nil
			},
		)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditLogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Category != entities.CategoryCreation || e.Action != "Service Request Created" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		res, err := uc.CreateRequest(context.Background(), validIntakeInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceRequestUseCase_GetRequest(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.GetRequest(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetRequest(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		expected := entities.ServiceRequest{ID: "req-1", Status: entities.StatusDiagnosis}
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(expected, nil)

		res, err := uc.GetRequest(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceRequestUseCase_AppendEPREntry(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.AppendEPREntry(context.Background(), "", entities.EPREntry{Action: "shipped"}, "tech")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("missing action", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil)
		_, err := uc.AppendEPREntry(context.Background(), "req-1", entities.EPREntry{Action: "  "}, "tech")
		if !errors.Is(err, ErrInvalidEPREntry) {
			t.Fatalf("expected ErrInvalidEPREntry, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		repo.EXPECT().AppendEPREntry(gomock.Any(), "req-1", gomock.Any()).Return(entities.ServiceRequest{}, nil)

		_, err := uc.AppendEPREntry(context.Background(), "req-1", entities.EPREntry{Action: "sent to partner"}, "tech")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("defaults timestamp and actor, mirrors into audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		auditRepo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, auditRepo)

		repo.EXPECT().AppendEPREntry(gomock.Any(), "req-1", gomock.AssignableToTypeOf(entities.EPREntry{})).DoAndReturn(
			func(_ context.Context, id string, e entities.EPREntry) (entities.ServiceRequest, error) {
				if e.Timestamp.IsZero() {
					t.Fatalf("expected defaulted timestamp")
				}
				if e.Actor != "tech" {
					t.Fatalf("expected defaulted actor, got %q", e.Actor)
				}
				return entities.ServiceRequest{ID: id, EPRTimeline: []entities.EPREntry{e}}, nil
			},
		)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditLogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Category != entities.CategoryEPR || e.Metadata["epr_status"] != "in_transit" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		entry := entities.EPREntry{Action: "sent to partner", Status: "in_transit"}
		res, err := uc.AppendEPREntry(context.Background(), "req-1", entry, "tech")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.EPRTimeline) != 1 {
			t.Fatalf("expected one epr entry, got %d", len(res.EPRTimeline))
		}
	})

	t.Run("keeps caller timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil)

		when := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().AppendEPREntry(gomock.Any(), "req-1", gomock.AssignableToTypeOf(entities.EPREntry{})).DoAndReturn(
			func(_ context.Context, id string, e entities.EPREntry) (entities.ServiceRequest, error) {
				if !e.Timestamp.Equal(when) {
					t.Fatalf("expected caller timestamp kept, got %v", e.Timestamp)
				}
				return entities.ServiceRequest{ID: id}, nil
			},
		)

		_, err := uc.AppendEPREntry(context.Background(), "req-1", entities.EPREntry{Action: "received back", Timestamp: when}, "tech")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
