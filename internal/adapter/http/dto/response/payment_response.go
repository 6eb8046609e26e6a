package response

import (
	"time"

	"repairtrack/internal/domain/entities"
)

type PaymentOrderResponse struct {
	OrderID   string    `json:"order_id"`
	RequestID string    `json:"request_id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentOrder(o entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:   o.OrderID,
		RequestID: o.RequestID,
		QuoteID:   o.QuoteID,
		Amount:    o.Amount,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
	}
}
