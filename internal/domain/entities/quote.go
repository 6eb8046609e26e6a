package entities

import "time"

// QuoteDecision represents the customer's decision on a quote.
//
// The decision transitions exactly once from pending to approved or
// declined; both branches are terminal.

type QuoteDecision string

const (
	QuoteDecisionPending  QuoteDecision = "pending"
	QuoteDecisionApproved QuoteDecision = "approved"
	QuoteDecisionDeclined QuoteDecision = "declined"
)

// QuoteItem is one priced line of a quote. Duplicate descriptions are kept
// as distinct line items.
type QuoteItem struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
}

// Quote is the itemized repair proposal attached to a service request
// (1 request : 0..1 quote).
//
// Monetary representation:
//   - TotalCost is always the exact sum of item costs.
//   - Currency is uniform across items and fixed at creation from the
//     first item; a single quote never mixes currencies.
type Quote struct {
	ID        string        `json:"id"`
	Items     []QuoteItem   `json:"items"`
	TotalCost float64       `json:"total_cost"`
	Currency  string        `json:"currency"`
	Decision  QuoteDecision `json:"decision"`
	CreatedAt time.Time     `json:"created_at"`
}

// IsApproved reports whether the customer approved the quote.
func (q *Quote) IsApproved() bool {
	return q != nil && q.Decision == QuoteDecisionApproved
}

// IsDecided reports whether the quote left the pending state.
func (q *Quote) IsDecided() bool {
	return q != nil && q.Decision != QuoteDecisionPending
}
