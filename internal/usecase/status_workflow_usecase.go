package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"
)

var ErrInvalidStatus = errors.New("invalid request status")

// IStatusWorkflowUseCase owns the canonical status field. Quote decisions
// and payment outcomes are projected into the single request status here.
//
// Manual edits are not guarded against the canonical workflow ordering:
// skipping or regressing steps is an explicit administrative override, and
// the forward sequence stays advisory (it drives the progress indicator
// only). A stricter transition guard is a product decision, not inferred.

type IStatusWorkflowUseCase interface {
	SetStatus(ctx context.Context, requestID string, newStatus entities.RequestStatus, actor string) (entities.ServiceRequest, error)
	ProjectQuoteDecision(ctx context.Context, requestID string, approved bool, actor string) (entities.ServiceRequest, error)
}

type StatusWorkflowUseCase struct {
	repo      interfaces.IServiceRequestRepository
	auditRepo interfaces.IAuditLogRepository
	notifier  interfaces.INotifier
}

var _ IStatusWorkflowUseCase = (*StatusWorkflowUseCase)(nil)

func NewStatusWorkflowUseCase(repo interfaces.IServiceRequestRepository, auditRepo interfaces.IAuditLogRepository, notifier interfaces.INotifier) *StatusWorkflowUseCase {
	return &StatusWorkflowUseCase{repo: repo, auditRepo: auditRepo, notifier: notifier}
}

func (u *StatusWorkflowUseCase) SetStatus(ctx context.Context, requestID string, newStatus entities.RequestStatus, actor string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if !entities.ValidStatus(newStatus) {
		return entities.ServiceRequest{}, ErrInvalidStatus
	}

	current, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if current.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, newStatus)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	log.Printf("[status][usecase] status updated request_id=%s from=%s to=%s actor=%s", requestID, current.Status, newStatus, actor)

	appendAudit(ctx, u.auditRepo, newAuditEntry(
		requestID, actor, entities.CategoryAudit,
		"Status Changed",
		fmt.Sprintf("Status changed from %s to %s", current.Status, newStatus),
		map[string]string{"from": string(current.Status), "to": string(newStatus)},
	))

	notify(ctx, u.notifier, "status_changed", "Repair status updated",
		fmt.Sprintf("Your repair request is now %s", newStatus),
		updated.CustomerID, requestID,
		map[string]string{"status": string(newStatus)},
	)
	return updated, nil
}

// ProjectQuoteDecision maps the customer's quote decision onto the request
// status: approval opens the repair path, decline ends it.
func (u *StatusWorkflowUseCase) ProjectQuoteDecision(ctx context.Context, requestID string, approved bool, actor string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	target := entities.StatusRepairInProgress
	action := "Quote Approved"
	details := "Customer approved the quote"
	if !approved {
		target = entities.StatusDeclined
		action = "Quote Declined"
		details = "Customer declined the quote"
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, target)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	log.Printf("[status][usecase] quote decision projected request_id=%s approved=%t status=%s", requestID, approved, target)

	decision := string(entities.QuoteDecisionApproved)
	if !approved {
		decision = string(entities.QuoteDecisionDeclined)
	}
	appendAudit(ctx, u.auditRepo, newAuditEntry(
		requestID, actor, entities.CategoryCustomerAction,
		action, details, map[string]string{"decision": decision},
	))
	return updated, nil
}
