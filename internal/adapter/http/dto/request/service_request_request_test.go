package request

import (
	"testing"
	"time"
)

func TestCreateServiceRequest_ToInput(t *testing.T) {
	r := CreateServiceRequest{
		CustomerID:       "cust-1",
		CustomerName:     "Maria Souza",
		ProductName:      "Espresso Machine",
		SerialNumber:     "SN-001",
		FaultDescription: "does not heat",
		AssignedTeam:     "bench-2",
	}

	in := r.ToInput()
	if in.CustomerID != "cust-1" || in.CustomerName != "Maria Souza" {
		t.Fatalf("unexpected customer fields: %+v", in)
	}
	if in.ProductName != "Espresso Machine" || in.SerialNumber != "SN-001" {
		t.Fatalf("unexpected product fields: %+v", in)
	}
	if in.FaultDescription != "does not heat" || in.AssignedTeam != "bench-2" {
		t.Fatalf("unexpected fields: %+v", in)
	}
}

func TestEPREntryRequest_ToEntity(t *testing.T) {
	cost := 120.0
	when := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	r := EPREntryRequest{
		Actor:          "partner-lab",
		Status:         "in_transit",
		Action:         "sent to partner",
		Details:        "board-level repair",
		CostEstimation: &cost,
		Currency:       "INR",
		Timestamp:      when,
	}

	e := r.ToEntity()
	if e.Actor != "partner-lab" || e.Status != "in_transit" || e.Action != "sent to partner" {
		t.Fatalf("unexpected entity: %+v", e)
	}
	if e.CostEstimation == nil || *e.CostEstimation != 120 || e.Currency != "INR" {
		t.Fatalf("unexpected cost fields: %+v", e)
	}
	if !e.Timestamp.Equal(when) {
		t.Fatalf("unexpected timestamp: %v", e.Timestamp)
	}
}

func TestCreateQuoteRequest_ToItems(t *testing.T) {
	r := CreateQuoteRequest{
		Actor: "tech",
		Items: []QuoteItemRequest{
			{Description: "compressor", Cost: 300, Currency: "INR"},
			{Description: "labour", Cost: 150.5, Currency: "INR"},
		},
	}

	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "compressor" || items[0].Cost != 300 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Currency != "INR" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}
