package handlers

import (
	"errors"
	"log"
	"net/http"

	request "repairtrack/internal/adapter/http/dto/request"
	response "repairtrack/internal/adapter/http/dto/response"
	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase"
	"repairtrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// ServiceRequestHandler handles intake, reads, manual status edits and EPR
// appends for service requests.

type ServiceRequestHandler struct {
	usecase  usecase.IServiceRequestUseCase
	workflow usecase.IStatusWorkflowUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase, workflow usecase.IStatusWorkflowUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc, workflow: workflow}
}

func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] created request_id=%s customer_id=%s", created.ID, created.CustomerID)

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// UpdateStatus applies a manual status edit. The workflow ordering is
// advisory: administrative overrides may skip or regress steps.
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.workflow.SetStatus(c.Request.Context(), requestID, entities.RequestStatus(payload.Status), payload.Actor)
	if err != nil {
		log.Printf("[request][handler] status update failed request_id=%s err=%v", requestID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) AppendEPREntry(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.EPREntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AppendEPREntry(c.Request.Context(), requestID, payload.ToEntity(), payload.Actor)
	if err != nil {
		log.Printf("[request][handler] epr append failed request_id=%s err=%v", requestID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequestInput),
		errors.Is(err, usecase.ErrInvalidEPREntry), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
