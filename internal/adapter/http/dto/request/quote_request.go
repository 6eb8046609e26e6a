package request

import "repairtrack/internal/domain/entities"

type QuoteItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Cost        float64 `json:"cost" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
}

type CreateQuoteRequest struct {
	Items []QuoteItemRequest `json:"items" binding:"required"`
	Actor string             `json:"actor" binding:"required"`
}

func (r CreateQuoteRequest) ToItems() []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			Description: it.Description,
			Cost:        it.Cost,
			Currency:    it.Currency,
		})
	}
	return items
}

// QuoteDecisionRequest carries the customer's one-shot decision. Approved
// is a pointer so an absent field is distinguishable from an explicit false.
type QuoteDecisionRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Actor    string `json:"actor" binding:"required"`
}
