package handlers

import (
	"errors"
	"log"
	"net/http"

	request "repairtrack/internal/adapter/http/dto/request"
	response "repairtrack/internal/adapter/http/dto/response"
	"repairtrack/internal/usecase"
	"repairtrack/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote submission and the customer decision.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.CreateQuote(c.Request.Context(), requestID, payload.ToItems(), payload.Actor)
	if err != nil {
		log.Printf("[quote][handler] create failed request_id=%s err=%v", requestID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success request_id=%s total=%.2f", requestID, updated.Quote.TotalCost)

	c.JSON(http.StatusCreated, response.FromServiceRequest(updated))
}

func (h *QuoteHandler) DecideQuote(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.QuoteDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approved == nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.DecideQuote(c.Request.Context(), requestID, *payload.Approved, payload.Actor)
	if err != nil {
		log.Printf("[quote][handler] decision failed request_id=%s approved=%t err=%v", requestID, *payload.Approved, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrEmptyQuoteItems),
		errors.Is(err, usecase.ErrEmptyItemDescription), errors.Is(err, usecase.ErrNonPositiveItemCost),
		errors.Is(err, usecase.ErrMixedCurrency):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "Quote already exists for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyDecided):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DECIDED", "Quote already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
