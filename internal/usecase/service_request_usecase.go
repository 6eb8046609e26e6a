package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrInvalidRequestID    = errors.New("invalid request id")
	ErrInvalidRequestInput = errors.New("invalid service request input")
	ErrInvalidEPREntry     = errors.New("invalid epr entry")
)

// CreateRequestInput carries the intake fields for a new service request.
type CreateRequestInput struct {
	CustomerID       string
	CustomerName     string
	ProductName      string
	SerialNumber     string
	FaultDescription string
	AssignedTeam     string
}

// IServiceRequestUseCase exposes request intake and read operations.

type IServiceRequestUseCase interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (entities.ServiceRequest, error)
	GetRequest(ctx context.Context, id string) (entities.ServiceRequest, error)
	AppendEPREntry(ctx context.Context, id string, entry entities.EPREntry, actor string) (entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	repo      interfaces.IServiceRequestRepository
	auditRepo interfaces.IAuditLogRepository
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, auditRepo interfaces.IAuditLogRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, auditRepo: auditRepo}
}

func (u *ServiceRequestUseCase) CreateRequest(ctx context.Context, input CreateRequestInput) (entities.ServiceRequest, error) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.ProductName = strings.TrimSpace(input.ProductName)
	input.SerialNumber = strings.TrimSpace(input.SerialNumber)
	input.FaultDescription = strings.TrimSpace(input.FaultDescription)

	if input.CustomerID == "" || input.CustomerName == "" || input.ProductName == "" || input.FaultDescription == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:               uuid.NewString(),
		CustomerID:       input.CustomerID,
		CustomerName:     input.CustomerName,
		ProductName:      input.ProductName,
		SerialNumber:     input.SerialNumber,
		FaultDescription: input.FaultDescription,
		AssignedTeam:     input.AssignedTeam,
		Status:           entities.StatusReceived,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	appendAudit(ctx, u.auditRepo, newAuditEntry(
		created.ID, created.CustomerName, entities.CategoryCreation,
		"Service Request Created", created.FaultDescription, nil,
	))
	return created, nil
}

func (u *ServiceRequestUseCase) GetRequest(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// AppendEPREntry records one external-process action on the request's EPR
// sub-timeline and mirrors it into the audit trail.
func (u *ServiceRequestUseCase) AppendEPREntry(ctx context.Context, id string, entry entities.EPREntry, actor string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if strings.TrimSpace(entry.Action) == "" {
		return entities.ServiceRequest{}, ErrInvalidEPREntry
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Actor == "" {
		entry.Actor = actor
	}

	updated, err := u.repo.AppendEPREntry(ctx, id, entry)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	appendAudit(ctx, u.auditRepo, newAuditEntry(
		updated.ID, entry.Actor, entities.CategoryEPR,
		entry.Action, entry.Details, map[string]string{"epr_status": entry.Status},
	))
	return updated, nil
}
