package entities

import "time"

// AuditCategory tags the source of an audit entry.

type AuditCategory string

const (
	CategoryCreation       AuditCategory = "creation"
	CategoryEPR            AuditCategory = "epr"
	CategoryQuote          AuditCategory = "quote"
	CategoryCustomerAction AuditCategory = "customer_action"
	CategoryPayment        AuditCategory = "payment"
	CategoryAudit          AuditCategory = "audit"
)

// ValidCategory reports whether c is a known audit category.
func ValidCategory(c AuditCategory) bool {
	switch c {
	case CategoryCreation, CategoryEPR, CategoryQuote, CategoryCustomerAction, CategoryPayment, CategoryAudit:
		return true
	}
	return false
}

// AuditLogEntry is one immutable, append-only record of a state-changing
// action on a service request. Entries are never mutated or deleted after
// creation.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - SK: id (time-prefixed for natural append order)
type AuditLogEntry struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id"`
	Timestamp time.Time         `json:"timestamp"`
	Actor     string            `json:"actor"`
	Category  AuditCategory     `json:"category"`
	Action    string            `json:"action"`
	Details   string            `json:"details,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
