package response

import (
	"time"

	"repairtrack/internal/domain/entities"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
}

type QuoteResponse struct {
	QuoteID   string              `json:"quote_id"`
	Items     []QuoteItemResponse `json:"items"`
	TotalCost float64             `json:"total_cost"`
	Currency  string              `json:"currency"`
	Decision  string              `json:"decision"`
	CreatedAt time.Time           `json:"created_at"`
}

type ServiceRequestResponse struct {
	RequestID        string              `json:"request_id"`
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	CustomerName     string              `json:"customer_name"`
	ProductName      string              `json:"product_name"`
	SerialNumber     string              `json:"serial_number"`
	FaultDescription string              `json:"fault_description"`
	Status           string              `json:"status"`
	Progress         int                 `json:"progress"`
	PaymentCompleted bool                `json:"payment_completed"`
	PaymentOrderID   string              `json:"payment_order_id,omitempty"`
	PaymentID        string              `json:"payment_id,omitempty"`
	AssignedTeam     string              `json:"assigned_team,omitempty"`
	Quote            *QuoteResponse      `json:"quote,omitempty"`
	EPRTimeline      []entities.EPREntry `json:"epr_timeline,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		RequestID:        r.ID,
		ID:               r.ID,
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		ProductName:      r.ProductName,
		SerialNumber:     r.SerialNumber,
		FaultDescription: r.FaultDescription,
		Status:           string(r.Status),
		Progress:         entities.ProgressIndex(r.Status),
		PaymentCompleted: r.PaymentCompleted,
		PaymentOrderID:   r.PaymentOrderID,
		PaymentID:        r.PaymentID,
		AssignedTeam:     r.AssignedTeam,
		Quote:            fromQuote(r.Quote),
		EPRTimeline:      r.EPRTimeline,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func fromQuote(q *entities.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse(it))
	}
	return &QuoteResponse{
		QuoteID:   q.ID,
		Items:     items,
		TotalCost: q.TotalCost,
		Currency:  q.Currency,
		Decision:  string(q.Decision),
		CreatedAt: q.CreatedAt,
	}
}
