package request

import (
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase"
)

type CreateServiceRequest struct {
	CustomerID       string `json:"customer_id" binding:"required"`
	CustomerName     string `json:"customer_name" binding:"required"`
	ProductName      string `json:"product_name" binding:"required"`
	SerialNumber     string `json:"serial_number"`
	FaultDescription string `json:"fault_description" binding:"required"`
	AssignedTeam     string `json:"assigned_team"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		ProductName:      r.ProductName,
		SerialNumber:     r.SerialNumber,
		FaultDescription: r.FaultDescription,
		AssignedTeam:     r.AssignedTeam,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}

type EPREntryRequest struct {
	Actor          string    `json:"actor" binding:"required"`
	Status         string    `json:"status"`
	Action         string    `json:"action" binding:"required"`
	Details        string    `json:"details"`
	CostEstimation *float64  `json:"cost_estimation"`
	Currency       string    `json:"currency"`
	Timestamp      time.Time `json:"timestamp"`
}

func (r EPREntryRequest) ToEntity() entities.EPREntry {
	return entities.EPREntry{
		Timestamp:      r.Timestamp,
		Actor:          r.Actor,
		Status:         r.Status,
		Action:         r.Action,
		Details:        r.Details,
		CostEstimation: r.CostEstimation,
		Currency:       r.Currency,
	}
}
