package handlers

import (
	"errors"
	"log"
	"net/http"

	request "repairtrack/internal/adapter/http/dto/request"
	response "repairtrack/internal/adapter/http/dto/response"
	"repairtrack/internal/usecase"
	"repairtrack/internal/usecase/interfaces"
	"repairtrack/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler bridges the settlement protocol over HTTP: synchronous
// order creation and proof verification, plus the asynchronous provider
// webhook. Both paths converge on the usecase's idempotent apply step.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	hub     interfaces.IPushHub
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, hub interfaces.IPushHub) *PaymentHandler {
	return &PaymentHandler{usecase: uc, hub: hub}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), requestID, payload.CustomerID)
	if err != nil {
		log.Printf("[payment][handler] order create failed request_id=%s err=%v", requestID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] order created request_id=%s order_id=%s", requestID, order.OrderID)

	c.JSON(http.StatusCreated, response.FromPaymentOrder(order))
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	settled, err := h.usecase.Verify(c.Request.Context(), requestID, payload.OrderID, payload.PaymentID, payload.Signature)
	if err != nil {
		log.Printf("[payment][handler] verify failed request_id=%s order_id=%s err=%v", requestID, payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify success request_id=%s payment_id=%s", requestID, payload.PaymentID)

	c.JSON(http.StatusOK, response.FromServiceRequest(settled))
}

// HandleProviderPush receives the out-of-band capture events. The event is
// published to scoped subscribers and, when captured, routed into the
// idempotent settlement path.
func (h *PaymentHandler) HandleProviderPush(c *gin.Context) {
	var payload request.PaymentPushRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	event := payload.ToEvent()
	if h.hub != nil {
		h.hub.Publish(event)
	}

	if err := h.usecase.HandleProviderPush(c.Request.Context(), event); err != nil {
		log.Printf("[payment][handler] push handling failed request_id=%s status=%s err=%v", event.RequestID, event.Status, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainErrorSimple("ALREADY_SETTLED", "Request already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderMismatch):
		return pkg.NewDomainErrorSimple("ORDER_MISMATCH", "Payment order does not match this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationFailed):
		return pkg.NewDomainErrorSimple("VERIFICATION_FAILED", "Payment verification failed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSettlementNotRecorded):
		return pkg.NewDomainError("SETTLEMENT_NOT_RECORDED", "Payment succeeded but request status not updated; refresh and reconcile", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
