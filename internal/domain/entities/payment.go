package entities

import "time"

// PushStatus values delivered by the provider's asynchronous channel.
const (
	PushStatusCaptured = "captured"
	PushStatusFailed   = "failed"
)

// PaymentOrder is the reference returned when a payment order is opened
// with the provider for an approved quote. It is ephemeral: once settled,
// only the order/payment ids remain on the ServiceRequest.
type PaymentOrder struct {
	OrderID   string    `json:"order_id"`
	RequestID string    `json:"request_id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentPushEvent is one capture event pushed by the provider out of band.
// Delivery order relative to synchronous verification is not guaranteed,
// which is why settlement application must be idempotent.
type PaymentPushEvent struct {
	RequestID string    `json:"service_request_id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
