package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteAlreadyExists   = errors.New("quote already exists for this request")
	ErrQuoteAlreadyDecided  = errors.New("quote already decided")
	ErrEmptyQuoteItems      = errors.New("quote must have at least one item")
	ErrEmptyItemDescription = errors.New("quote item description is required")
	ErrNonPositiveItemCost  = errors.New("quote item cost must be positive")
	ErrMixedCurrency        = errors.New("quote items must share one currency")
)

// IQuoteUseCase exposes the quote negotiation protocol:
// NoQuote -> Pending -> {Approved, Declined}, terminal on either branch.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, requestID string, items []entities.QuoteItem, actor string) (entities.ServiceRequest, error)
	DecideQuote(ctx context.Context, requestID string, approved bool, actor string) (entities.ServiceRequest, error)
}

type QuoteUseCase struct {
	repo      interfaces.IServiceRequestRepository
	auditRepo interfaces.IAuditLogRepository
	workflow  IStatusWorkflowUseCase
	notifier  interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IServiceRequestRepository, auditRepo interfaces.IAuditLogRepository, workflow IStatusWorkflowUseCase, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, auditRepo: auditRepo, workflow: workflow, notifier: notifier}
}

// CreateQuote attaches a new pending quote to the request and moves it to
// awaiting customer approval. Duplicate item descriptions are kept as
// distinct line items; the currency is fixed from the first item.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, requestID string, items []entities.QuoteItem, actor string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if len(items) == 0 {
		return entities.ServiceRequest{}, ErrEmptyQuoteItems
	}

	currency := strings.TrimSpace(items[0].Currency)
	total := 0.0
	for i := range items {
		items[i].Description = strings.TrimSpace(items[i].Description)
		items[i].Currency = strings.TrimSpace(items[i].Currency)
		if items[i].Description == "" {
			return entities.ServiceRequest{}, ErrEmptyItemDescription
		}
		if items[i].Cost <= 0 {
			return entities.ServiceRequest{}, ErrNonPositiveItemCost
		}
		if items[i].Currency != currency {
			return entities.ServiceRequest{}, ErrMixedCurrency
		}
		total += items[i].Cost
	}

	current, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if current.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if current.Quote != nil {
		return entities.ServiceRequest{}, ErrQuoteAlreadyExists
	}

	q := entities.Quote{
		ID:        uuid.NewString(),
		Items:     items,
		TotalCost: total,
		Currency:  currency,
		Decision:  entities.QuoteDecisionPending,
		CreatedAt: time.Now().UTC(),
	}

	// The attach is conditional on no quote existing, so two concurrent
	// submissions collapse to one winner.
	updated, err := u.repo.AttachQuote(ctx, requestID, q)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrQuoteAlreadyExists
	}
	log.Printf("[quote][usecase] quote created request_id=%s quote_id=%s total=%.2f currency=%s", requestID, q.ID, total, currency)

	updated, err = u.workflow.SetStatus(ctx, requestID, entities.StatusAwaitingApproval, actor)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	appendAudit(ctx, u.auditRepo, newAuditEntry(
		requestID, actor, entities.CategoryQuote,
		"Quote Created",
		fmt.Sprintf("Quote for %s %s submitted for customer approval", formatAmount(total), currency),
		map[string]string{
			"quote_id":     q.ID,
			"quote_amount": formatAmount(total),
			"currency":     currency,
		},
	))

	notify(ctx, u.notifier, "quote_created", "Repair quote ready",
		fmt.Sprintf("A repair quote of %s %s is awaiting your approval", formatAmount(total), currency),
		updated.CustomerID, requestID,
		map[string]string{"quote_amount": formatAmount(total), "currency": currency},
	)
	return updated, nil
}

// DecideQuote records the customer's one-shot decision. The store update is
// conditional on the quote still being pending, so re-deciding (in either
// direction) fails with ErrQuoteAlreadyDecided.
func (u *QuoteUseCase) DecideQuote(ctx context.Context, requestID string, approved bool, actor string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	current, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if current.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if current.Quote == nil {
		return entities.ServiceRequest{}, ErrQuoteNotFound
	}

	decision := entities.QuoteDecisionApproved
	if !approved {
		decision = entities.QuoteDecisionDeclined
	}

	updated, alreadyDecided, err := u.repo.UpdateQuoteDecision(ctx, requestID, decision)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if alreadyDecided {
		return entities.ServiceRequest{}, ErrQuoteAlreadyDecided
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	log.Printf("[quote][usecase] quote decided request_id=%s decision=%s actor=%s", requestID, decision, actor)

	return u.workflow.ProjectQuoteDecision(ctx, requestID, approved, actor)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
