package request

import (
	"time"

	"repairtrack/internal/domain/entities"
)

type CreatePaymentOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// PaymentPushRequest is the inbound provider push payload, keyed by
// service_request_id.
type PaymentPushRequest struct {
	RequestID string  `json:"service_request_id" binding:"required"`
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status" binding:"required"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

func (r PaymentPushRequest) ToEvent() entities.PaymentPushEvent {
	return entities.PaymentPushEvent{
		RequestID: r.RequestID,
		PaymentID: r.PaymentID,
		OrderID:   r.OrderID,
		Status:    r.Status,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Timestamp: time.Now().UTC(),
	}
}
