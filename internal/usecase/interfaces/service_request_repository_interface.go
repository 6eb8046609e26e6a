package interfaces

import (
	"context"
	"repairtrack/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// The repair-tracker must be able to:
//   - create a request at intake
//   - read the authoritative record (the caller-side cache is a read-through
//     projection, never a second source of truth)
//   - patch individual fields with conditional-update semantics, so the
//     store's per-record compare-and-set is the only serialization point
//
// Not-found is reported as a zero-value request with nil error; usecases
// translate it to ErrRequestNotFound.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
	AttachQuote(ctx context.Context, id string, q entities.Quote) (entities.ServiceRequest, error)

	// UpdateQuoteDecision is conditional on the quote still being pending.
	// A resolved quote reports alreadyDecided=true with the current record.
	UpdateQuoteDecision(ctx context.Context, id string, decision entities.QuoteDecision) (r entities.ServiceRequest, alreadyDecided bool, err error)

	SetPaymentOrder(ctx context.Context, id string, orderID string) (entities.ServiceRequest, error)

	// MarkPaymentCompleted flips payment_completed false -> true under a
	// conditional update. When the flag is already true the update is a
	// no-op: applied=false and the already-settled record is returned.
	MarkPaymentCompleted(ctx context.Context, id string, paymentID string, orderID string) (r entities.ServiceRequest, applied bool, err error)

	AppendEPREntry(ctx context.Context, id string, entry entities.EPREntry) (entities.ServiceRequest, error)
}
