package entities

import "time"

// RequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - The repair-tracker is the source of truth for request/quote/payment state.
//   - The forward ordering below drives the progress indicator; manual edits
//     may still skip or regress steps (administrative override).

type RequestStatus string

const (
	StatusReceived         RequestStatus = "received"
	StatusDiagnosis        RequestStatus = "diagnosis"
	StatusAwaitingApproval RequestStatus = "awaiting_approval"
	StatusRepairInProgress RequestStatus = "repair_in_progress"
	StatusQualityCheck     RequestStatus = "quality_check"
	StatusDispatched       RequestStatus = "dispatched"
	StatusCompleted        RequestStatus = "completed"

	// StatusDeclined is terminal: the customer declined the quote.
	StatusDeclined RequestStatus = "declined"
)

// WorkflowOrder is the canonical forward ordering of the repair workflow.
// It is advisory: SetStatus does not enforce it.
var WorkflowOrder = []RequestStatus{
	StatusReceived,
	StatusDiagnosis,
	StatusAwaitingApproval,
	StatusRepairInProgress,
	StatusQualityCheck,
	StatusDispatched,
	StatusCompleted,
}

// ProgressIndex returns the position of s in WorkflowOrder, or -1 for
// statuses outside the forward path (e.g. declined).
func ProgressIndex(s RequestStatus) int {
	for i, st := range WorkflowOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// ValidStatus reports whether s is a known request status.
func ValidStatus(s RequestStatus) bool {
	if s == StatusDeclined {
		return true
	}
	return ProgressIndex(s) >= 0
}

// EPREntry is one record of the external-process-record sub-timeline:
// actions taken by an external review process, merged into the request's
// audit history by the timeline aggregator.
type EPREntry struct {
	Timestamp      time.Time `json:"timestamp"`
	Actor          string    `json:"actor"`
	Status         string    `json:"status"`
	Action         string    `json:"action"`
	Details        string    `json:"details,omitempty"`
	CostEstimation *float64  `json:"cost_estimation,omitempty"`
	Currency       string    `json:"currency,omitempty"`
}

// ServiceRequest is the repair request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The request record is the unit of mutation: the quote and the payment
// flags are sub-resources updated only as part of a request update, so the
// store's per-record conditional updates are the serialization point.
//
// Invariant: PaymentCompleted implies Quote.Decision == approved.

type ServiceRequest struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	ProductName      string        `json:"product_name"`
	SerialNumber     string        `json:"serial_number"`
	FaultDescription string        `json:"fault_description"`
	Status           RequestStatus `json:"status"`
	PaymentCompleted bool          `json:"payment_completed"`
	PaymentOrderID   string        `json:"payment_order_id,omitempty"`
	PaymentID        string        `json:"payment_id,omitempty"`
	AssignedTeam     string        `json:"assigned_team,omitempty"`
	Quote            *Quote        `json:"quote,omitempty"`
	EPRTimeline      []EPREntry    `json:"epr_timeline,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
