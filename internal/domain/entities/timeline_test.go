package entities

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func baseRequest() ServiceRequest {
	return ServiceRequest{
		ID:               "req-1",
		CustomerName:     "Maria Souza",
		SerialNumber:     "SN-001",
		FaultDescription: "does not heat",
		CreatedAt:        time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildTimeline(t *testing.T) {
	t.Run("empty history still yields the creation entry", func(t *testing.T) {
		tl := BuildTimeline(baseRequest(), nil)
		if len(tl.Entries) != 1 {
			t.Fatalf("expected exactly one entry, got %d", len(tl.Entries))
		}
		e := tl.Entries[0]
		if e.Category != CategoryCreation || e.Action != "Service Request Created" {
			t.Fatalf("unexpected floor entry: %+v", e)
		}
		if e.Actor != "Maria Souza" || e.Details != "does not heat" {
			t.Fatalf("floor entry must carry the intake fields: %+v", e)
		}
		if !e.Timestamp.Equal(baseRequest().CreatedAt) {
			t.Fatalf("floor entry must use the request creation time: %v", e.Timestamp)
		}
	})

	t.Run("audit creation record suppresses the synthesized one", func(t *testing.T) {
		auditLog := []AuditLogEntry{{
			ID:        "a-1",
			Timestamp: baseRequest().CreatedAt,
			Category:  CategoryCreation,
			Action:    "Service Request Created",
		}}
		tl := BuildTimeline(baseRequest(), auditLog)
		count := 0
		for _, e := range tl.Entries {
			if e.Category == CategoryCreation {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("expected one creation entry, got %d", count)
		}
	})

	t.Run("epr entries keep their own fields", func(t *testing.T) {
		cost := 120.0
		r := baseRequest()
		r.EPRTimeline = []EPREntry{{
			Timestamp:      time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
			Actor:          "partner-lab",
			Action:         "sent to partner",
			Status:         "in_transit",
			CostEstimation: &cost,
			Currency:       "INR",
		}}
		tl := BuildTimeline(r, nil)
		if len(tl.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(tl.Entries))
		}
		e := tl.Entries[1]
		if e.Category != CategoryEPR || e.EPRStatus != "in_transit" {
			t.Fatalf("unexpected epr entry: %+v", e)
		}
		if e.CostEstimation == nil || *e.CostEstimation != 120 || e.Currency != "INR" {
			t.Fatalf("epr cost estimation lost: %+v", e)
		}
	})

	t.Run("quote entries are enriched from metadata first", func(t *testing.T) {
		r := baseRequest()
		r.Quote = &Quote{TotalCost: 999, Currency: "BRL", Decision: QuoteDecisionApproved}
		auditLog := []AuditLogEntry{{
			Timestamp: time.Date(2026, 1, 11, 14, 0, 0, 0, time.UTC),
			Category:  CategoryQuote,
			Action:    "Quote Created",
			Metadata:  map[string]string{"quote_amount": "450.5", "currency": "INR"},
		}}
		tl := BuildTimeline(r, auditLog)
		var quoteEntry *TimelineEntry
		for i := range tl.Entries {
			if tl.Entries[i].Category == CategoryQuote {
				quoteEntry = &tl.Entries[i]
			}
		}
		if quoteEntry == nil {
			t.Fatalf("missing quote entry")
		}
		// The metadata snapshot wins over the live quote: the timeline shows
		// the amount as it was when the event happened.
		if quoteEntry.QuoteAmount == nil || *quoteEntry.QuoteAmount != 450.5 || quoteEntry.Currency != "INR" {
			t.Fatalf("unexpected quote amount: %+v", quoteEntry)
		}
		if quoteEntry.QuoteDecision != string(QuoteDecisionApproved) {
			t.Fatalf("expected decided quote annotation: %+v", quoteEntry)
		}
	})

	t.Run("quote entries fall back to the stored quote", func(t *testing.T) {
		r := baseRequest()
		r.Quote = &Quote{TotalCost: 450.5, Currency: "INR", Decision: QuoteDecisionPending}
		auditLog := []AuditLogEntry{{
			Timestamp: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
			Category:  CategoryCustomerAction,
			Action:    "Quote Approved",
		}}
		tl := BuildTimeline(r, auditLog)
		e := tl.Entries[len(tl.Entries)-1]
		if e.QuoteAmount == nil || *e.QuoteAmount != 450.5 || e.Currency != "INR" {
			t.Fatalf("expected fallback to stored quote: %+v", e)
		}
		if e.QuoteDecision != "" {
			t.Fatalf("pending quote must not be annotated as decided: %+v", e)
		}
	})
}

func TestTimeline_Filter(t *testing.T) {
	tl := Timeline{Entries: []TimelineEntry{
		{Category: CategoryCreation, Action: "created"},
		{Category: CategoryEPR, Action: "sent"},
		{Category: CategoryPayment, Action: "captured"},
	}}

	t.Run("wildcard keeps everything", func(t *testing.T) {
		for _, c := range []string{"", CategoryAll} {
			if got := tl.Filter(c); len(got.Entries) != 3 {
				t.Fatalf("filter %q: expected 3 entries, got %d", c, len(got.Entries))
			}
		}
	})

	t.Run("exact category match", func(t *testing.T) {
		got := tl.Filter("epr")
		if len(got.Entries) != 1 || got.Entries[0].Action != "sent" {
			t.Fatalf("unexpected entries: %+v", got.Entries)
		}
	})

	t.Run("unknown category yields empty", func(t *testing.T) {
		if got := tl.Filter("shipping"); len(got.Entries) != 0 {
			t.Fatalf("expected no entries, got %+v", got.Entries)
		}
	})
}

func TestTimeline_Search(t *testing.T) {
	tl := Timeline{Entries: []TimelineEntry{
		{Action: "Quote Created", Details: "Quote for 450.5 INR", Actor: "tech"},
		{Action: "Payment Captured", Details: "Payment of 450.5 INR captured", Actor: "payment-provider"},
	}}

	t.Run("case-insensitive across action, details and actor", func(t *testing.T) {
		cases := []struct {
			text string
			want int
		}{
			{text: "QUOTE", want: 1},
			{text: "captured", want: 1},
			{text: "TECH", want: 1},
			{text: "450.5", want: 2},
			{text: "nothing here", want: 0},
			{text: "   ", want: 2},
		}
		for _, tc := range cases {
			if got := tl.Search(tc.text); len(got.Entries) != tc.want {
				t.Fatalf("search %q: expected %d entries, got %d", tc.text, tc.want, len(got.Entries))
			}
		}
	})
}

func TestTimeline_Sort(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)
	tl := Timeline{Entries: []TimelineEntry{
		{Timestamp: t1, Action: "later"},
		{Timestamp: t0, Action: "first-equal"},
		{Timestamp: t0, Action: "second-equal"},
	}}

	t.Run("oldest first", func(t *testing.T) {
		got := tl.Sort(SortOldest)
		if got.Entries[0].Action != "first-equal" || got.Entries[2].Action != "later" {
			t.Fatalf("unexpected order: %+v", got.Entries)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		got := tl.Sort(SortNewest)
		if got.Entries[0].Action != "later" {
			t.Fatalf("unexpected order: %+v", got.Entries)
		}
	})

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		for _, order := range []SortOrder{SortOldest, SortNewest} {
			got := tl.Sort(order)
			var equal []string
			for _, e := range got.Entries {
				if e.Timestamp.Equal(t0) {
					equal = append(equal, e.Action)
				}
			}
			if len(equal) != 2 || equal[0] != "first-equal" || equal[1] != "second-equal" {
				t.Fatalf("sort %s: ties reordered: %v", order, equal)
			}
		}
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		_ = tl.Sort(SortOldest)
		if tl.Entries[0].Action != "later" {
			t.Fatalf("receiver mutated: %+v", tl.Entries)
		}
	})
}

func TestTimeline_Export(t *testing.T) {
	t.Run("sparse optional fields are omitted from json", func(t *testing.T) {
		amount := 450.5
		tl := Timeline{Entries: []TimelineEntry{
			{Category: CategoryCreation, Marker: "plus-circle", Action: "created", Actor: "Maria Souza"},
			{Category: CategoryQuote, Marker: "currency", Action: "quoted", QuoteAmount: &amount, Currency: "INR"},
		}}
		export := tl.Export(baseRequest(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

		raw, err := json.Marshal(export)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		payload := string(raw)
		if !strings.Contains(payload, `"quote_amount":450.5`) {
			t.Fatalf("expected quote amount in payload: %s", payload)
		}
		// The creation entry has no quote fields; a sparse export must not
		// carry nulls or zero values for them.
		if strings.Count(payload, "quote_amount") != 1 {
			t.Fatalf("expected quote_amount on exactly one entry: %s", payload)
		}
		if strings.Contains(payload, "epr_status") {
			t.Fatalf("unexpected epr_status in payload: %s", payload)
		}
	})

	t.Run("snapshot identity", func(t *testing.T) {
		now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		export := Timeline{}.Export(baseRequest(), now)
		if export.RequestID != "req-1" || export.CustomerName != "Maria Souza" || export.SerialNumber != "SN-001" {
			t.Fatalf("unexpected identity: %+v", export)
		}
		if !export.ExportedAt.Equal(now) {
			t.Fatalf("unexpected exported_at: %v", export.ExportedAt)
		}
		if len(export.Entries) != 0 {
			t.Fatalf("expected empty entries, got %+v", export.Entries)
		}
	})
}
