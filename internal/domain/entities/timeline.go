package entities

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortOrder for timeline queries.

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// CategoryAll is the filter wildcard that returns every entry.
const CategoryAll = "all"

// TimelineEntry is one normalized, displayable record of the merged history
// of a request. Heterogeneous sources (synthesized creation event, EPR
// sub-timeline, raw audit log) are tagged with a category at ingestion time
// and projected into this one shape; category-specific fields stay optional
// rather than being inferred from free-text type strings.
type TimelineEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Category  AuditCategory `json:"category"`
	Marker    string        `json:"marker"`
	Actor     string        `json:"actor"`
	Action    string        `json:"action"`
	Details   string        `json:"details,omitempty"`

	CostEstimation *float64          `json:"cost_estimation,omitempty"`
	EPRStatus      string            `json:"epr_status,omitempty"`
	QuoteAmount    *float64          `json:"quote_amount,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	QuoteDecision  string            `json:"quote_decision,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// Timeline is the merged, ordered history of one service request. All query
// operations are pure: they return a new Timeline and never mutate the
// receiver.
type Timeline struct {
	Entries []TimelineEntry
}

// TimelineExportEntry mirrors TimelineEntry in the persisted snapshot
// format; optional fields are omitted when absent (sparse payload).
type TimelineExportEntry struct {
	Timestamp      time.Time         `json:"timestamp"`
	Type           string            `json:"type"`
	Action         string            `json:"action"`
	User           string            `json:"user"`
	Details        string            `json:"details,omitempty"`
	Category       AuditCategory     `json:"category"`
	CostEstimation *float64          `json:"cost_estimation,omitempty"`
	EPRStatus      string            `json:"epr_status,omitempty"`
	QuoteAmount    *float64          `json:"quote_amount,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	QuoteDecision  string            `json:"quote_decision,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// TimelineExport is the self-describing snapshot of a filtered/sorted
// timeline plus the identity of the request it belongs to.
type TimelineExport struct {
	RequestID    string                `json:"request_id"`
	CustomerName string                `json:"customer_name"`
	SerialNumber string                `json:"serial_number"`
	ExportedAt   time.Time             `json:"exported_at"`
	Entries      []TimelineExportEntry `json:"entries"`
}

func markerFor(c AuditCategory) string {
	switch c {
	case CategoryCreation:
		return "plus-circle"
	case CategoryEPR:
		return "clipboard"
	case CategoryQuote:
		return "currency"
	case CategoryCustomerAction:
		return "user-check"
	case CategoryPayment:
		return "credit-card"
	default:
		return "pencil"
	}
}

// BuildTimeline merges the request's creation event, its optional EPR
// sub-timeline and the raw audit log into one normalized sequence.
//
// The synthesized creation entry is the floor of the merge: a request with
// no quote, no EPR entries and an empty audit log still yields exactly one
// entry. When the audit log already carries the creation record it is used
// instead, so the event is never duplicated.
func BuildTimeline(req ServiceRequest, auditLog []AuditLogEntry) Timeline {
	entries := make([]TimelineEntry, 0, len(auditLog)+len(req.EPRTimeline)+1)

	hasCreation := false
	for _, a := range auditLog {
		if a.Category == CategoryCreation {
			hasCreation = true
			break
		}
	}
	if !hasCreation {
		entries = append(entries, TimelineEntry{
			Timestamp: req.CreatedAt,
			Category:  CategoryCreation,
			Marker:    markerFor(CategoryCreation),
			Actor:     req.CustomerName,
			Action:    "Service Request Created",
			Details:   req.FaultDescription,
		})
	}

	for _, e := range req.EPRTimeline {
		entries = append(entries, TimelineEntry{
			Timestamp:      e.Timestamp,
			Category:       CategoryEPR,
			Marker:         markerFor(CategoryEPR),
			Actor:          e.Actor,
			Action:         e.Action,
			Details:        e.Details,
			EPRStatus:      e.Status,
			CostEstimation: e.CostEstimation,
			Currency:       e.Currency,
		})
	}

	for _, a := range auditLog {
		entries = append(entries, fromAuditEntry(a, req.Quote))
	}

	return Timeline{Entries: entries}
}

func fromAuditEntry(a AuditLogEntry, quote *Quote) TimelineEntry {
	e := TimelineEntry{
		Timestamp: a.Timestamp,
		Category:  a.Category,
		Marker:    markerFor(a.Category),
		Actor:     a.Actor,
		Action:    a.Action,
		Details:   a.Details,
		Metadata:  a.Metadata,
	}

	switch a.Category {
	case CategoryQuote, CategoryCustomerAction:
		if amount, ok := amountFromMetadata(a.Metadata); ok {
			e.QuoteAmount = &amount
			e.Currency = a.Metadata["currency"]
		} else if quote != nil {
			total := quote.TotalCost
			e.QuoteAmount = &total
			e.Currency = quote.Currency
		}
		if quote != nil && quote.IsDecided() {
			e.QuoteDecision = string(quote.Decision)
		}
	}
	return e
}

func amountFromMetadata(md map[string]string) (float64, bool) {
	raw, ok := md["quote_amount"]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Filter returns the entries whose category exactly matches c; the
// wildcard CategoryAll returns everything.
func (t Timeline) Filter(c string) Timeline {
	if c == "" || c == CategoryAll {
		return Timeline{Entries: append([]TimelineEntry(nil), t.Entries...)}
	}
	out := make([]TimelineEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if string(e.Category) == c {
			out = append(out, e)
		}
	}
	return Timeline{Entries: out}
}

// Search returns the entries whose action, details or actor contains text,
// case-insensitively. Empty text matches everything.
func (t Timeline) Search(text string) Timeline {
	if strings.TrimSpace(text) == "" {
		return Timeline{Entries: append([]TimelineEntry(nil), t.Entries...)}
	}
	needle := strings.ToLower(text)
	out := make([]TimelineEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if strings.Contains(strings.ToLower(e.Action), needle) ||
			strings.Contains(strings.ToLower(e.Details), needle) ||
			strings.Contains(strings.ToLower(e.Actor), needle) {
			out = append(out, e)
		}
	}
	return Timeline{Entries: out}
}

// Sort orders the entries by timestamp. The sort is stable: entries with
// equal timestamps keep their original insertion order.
func (t Timeline) Sort(order SortOrder) Timeline {
	out := append([]TimelineEntry(nil), t.Entries...)
	if order == SortNewest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	}
	return Timeline{Entries: out}
}

// Export serializes the timeline plus the request's identity metadata into
// a snapshot. Absent optional fields are omitted per entry.
func (t Timeline) Export(req ServiceRequest, now time.Time) TimelineExport {
	entries := make([]TimelineExportEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, TimelineExportEntry{
			Timestamp:      e.Timestamp,
			Type:           e.Marker,
			Action:         e.Action,
			User:           e.Actor,
			Details:        e.Details,
			Category:       e.Category,
			CostEstimation: e.CostEstimation,
			EPRStatus:      e.EPRStatus,
			QuoteAmount:    e.QuoteAmount,
			Currency:       e.Currency,
			QuoteDecision:  e.QuoteDecision,
			Metadata:       e.Metadata,
		})
	}
	return TimelineExport{
		RequestID:    req.ID,
		CustomerName: req.CustomerName,
		SerialNumber: req.SerialNumber,
		ExportedAt:   now,
		Entries:      entries,
	}
}
