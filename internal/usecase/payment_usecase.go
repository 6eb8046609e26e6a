package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"
)

var (
	ErrQuoteNotApproved   = errors.New("quote not approved")
	ErrAlreadySettled     = errors.New("request already settled")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrOrderMismatch      = errors.New("payment order does not match this request")

	// ErrSettlementNotRecorded is the distinguished condition where the
	// provider confirmed the capture but the local record could not be
	// updated. It is surfaced for manual refresh/reconciliation, never
	// swallowed.
	ErrSettlementNotRecorded = errors.New("payment succeeded but request status not updated")
)

// IPaymentUseCase implements the settlement protocol. Both the synchronous
// verify path and the asynchronous provider push converge on ApplyPayment,
// which is idempotent: for a given request, payment_completed transitions
// false -> true at most once, even when the two flows race.

type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, requestID, customerID string) (entities.PaymentOrder, error)
	Verify(ctx context.Context, requestID, orderRef, paymentID, signature string) (entities.ServiceRequest, error)
	ApplyPayment(ctx context.Context, requestID, paymentID, orderID string) (entities.ServiceRequest, error)
	HandleProviderPush(ctx context.Context, event entities.PaymentPushEvent) error
}

type PaymentUseCase struct {
	repo      interfaces.IServiceRequestRepository
	auditRepo interfaces.IAuditLogRepository
	gateway   interfaces.IPaymentGateway
	notifier  interfaces.INotifier
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IServiceRequestRepository, auditRepo interfaces.IAuditLogRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, auditRepo: auditRepo, gateway: gateway, notifier: notifier}
}

// CreateOrder opens a provider order for the request's approved quote. The
// amount and currency always come from the stored quote, never the caller.
func (u *PaymentUseCase) CreateOrder(ctx context.Context, requestID, customerID string) (entities.PaymentOrder, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PaymentOrder{}, ErrInvalidRequestID
	}
	if u.gateway == nil {
		return entities.PaymentOrder{}, errors.New("payment gateway not configured")
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if r.ID == "" {
		return entities.PaymentOrder{}, ErrRequestNotFound
	}
	if r.Quote == nil {
		return entities.PaymentOrder{}, ErrQuoteNotFound
	}
	if !r.Quote.IsApproved() {
		return entities.PaymentOrder{}, ErrQuoteNotApproved
	}
	if r.PaymentCompleted {
		return entities.PaymentOrder{}, ErrAlreadySettled
	}

	log.Printf("[payment][usecase] creating order request_id=%s quote_id=%s amount=%.2f %s", requestID, r.Quote.ID, r.Quote.TotalCost, r.Quote.Currency)
	orderRef, err := u.gateway.CreateOrder(ctx, r.Quote.TotalCost, r.Quote.Currency, map[string]string{
		"service_request_id": requestID,
		"quote_id":           r.Quote.ID,
		"customer_id":        strings.TrimSpace(customerID),
	})
	if err != nil {
		log.Printf("[payment][usecase] order creation failed request_id=%s err=%v", requestID, err)
		return entities.PaymentOrder{}, err
	}

	if _, err := u.repo.SetPaymentOrder(ctx, requestID, orderRef); err != nil {
		log.Printf("[payment][usecase] persisting order ref failed request_id=%s order_id=%s err=%v", requestID, orderRef, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[payment][usecase] order created request_id=%s order_id=%s", requestID, orderRef)

	return entities.PaymentOrder{
		OrderID:   orderRef,
		RequestID: requestID,
		QuoteID:   r.Quote.ID,
		Amount:    r.Quote.TotalCost,
		Currency:  r.Quote.Currency,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Verify checks the provider proof against the expected order binding and,
// on success, applies the payment. A failed verification mutates nothing.
func (u *PaymentUseCase) Verify(ctx context.Context, requestID, orderRef, paymentID, signature string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if u.gateway == nil {
		return entities.ServiceRequest{}, errors.New("payment gateway not configured")
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if r.PaymentOrderID == "" || r.PaymentOrderID != orderRef {
		return entities.ServiceRequest{}, ErrOrderMismatch
	}

	if !u.gateway.VerifySignature(orderRef, paymentID, signature) {
		log.Printf("[payment][usecase] verification failed request_id=%s order_id=%s payment_id=%s", requestID, orderRef, paymentID)
		return entities.ServiceRequest{}, ErrVerificationFailed
	}
	log.Printf("[payment][usecase] verification ok request_id=%s order_id=%s payment_id=%s", requestID, orderRef, paymentID)

	settled, err := u.ApplyPayment(ctx, requestID, paymentID, orderRef)
	if err != nil {
		// Provider-side capture is confirmed at this point; a local
		// failure is the reconciliation condition, not a payment failure.
		return entities.ServiceRequest{}, fmt.Errorf("%w: %v", ErrSettlementNotRecorded, err)
	}
	return settled, nil
}

// ApplyPayment is the single idempotent apply step shared by both flows.
// The store's conditional update on payment_completed is the serialization
// point: concurrent duplicate captures collapse to one audit entry and one
// notification.
func (u *PaymentUseCase) ApplyPayment(ctx context.Context, requestID, paymentID, orderID string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if r.PaymentCompleted {
		log.Printf("[payment][usecase] already settled request_id=%s payment_id=%s", requestID, paymentID)
		return r, nil
	}
	// payment_completed = true must imply an approved quote.
	if !r.Quote.IsApproved() {
		return entities.ServiceRequest{}, ErrQuoteNotApproved
	}

	updated, applied, err := u.repo.MarkPaymentCompleted(ctx, requestID, paymentID, orderID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !applied {
		// Lost the race against the other flow; the record is settled.
		log.Printf("[payment][usecase] settlement race lost request_id=%s payment_id=%s", requestID, paymentID)
		return updated, nil
	}
	log.Printf("[payment][usecase] settlement applied request_id=%s payment_id=%s order_id=%s", requestID, paymentID, orderID)

	amount := updated.Quote.TotalCost
	currency := updated.Quote.Currency
	appendAudit(ctx, u.auditRepo, newAuditEntry(
		requestID, "payment-provider", entities.CategoryPayment,
		"Payment Captured",
		fmt.Sprintf("Payment of %s %s captured", formatAmount(amount), currency),
		map[string]string{
			"payment_id": paymentID,
			"order_id":   orderID,
			"amount":     formatAmount(amount),
			"currency":   currency,
		},
	))

	notify(ctx, u.notifier, "payment_captured", "Payment received",
		fmt.Sprintf("Your payment of %s %s was received", formatAmount(amount), currency),
		updated.CustomerID, requestID,
		map[string]string{"payment_id": paymentID, "amount": formatAmount(amount), "currency": currency},
	)
	return updated, nil
}

// HandleProviderPush reacts to an out-of-band capture event. Non-captured
// statuses are logged and ignored.
func (u *PaymentUseCase) HandleProviderPush(ctx context.Context, event entities.PaymentPushEvent) error {
	if strings.TrimSpace(event.RequestID) == "" {
		return ErrInvalidRequestID
	}
	if event.Status != entities.PushStatusCaptured {
		log.Printf("[payment][usecase] push ignored request_id=%s status=%s", event.RequestID, event.Status)
		return nil
	}

	log.Printf("[payment][usecase] push capture request_id=%s payment_id=%s order_id=%s", event.RequestID, event.PaymentID, event.OrderID)
	if _, err := u.ApplyPayment(ctx, event.RequestID, event.PaymentID, event.OrderID); err != nil {
		return fmt.Errorf("%w: %v", ErrSettlementNotRecorded, err)
	}
	return nil
}
