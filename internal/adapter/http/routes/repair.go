package routes

import (
	"repairtrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathWebhooks = "/webhooks"
)

func addRepairRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	quoteHandler *handlers.QuoteHandler,
	paymentHandler *handlers.PaymentHandler,
	timelineHandler *handlers.TimelineHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/status", requestHandler.UpdateStatus)
		requests.POST("/:request_id/epr", requestHandler.AppendEPREntry)

		requests.POST("/:request_id/quote", quoteHandler.CreateQuote)
		requests.POST("/:request_id/quote/decision", quoteHandler.DecideQuote)

		requests.POST("/:request_id/payments/order", paymentHandler.CreateOrder)
		requests.POST("/:request_id/payments/verify", paymentHandler.VerifyPayment)

		requests.GET("/:request_id/timeline", timelineHandler.GetTimeline)
		requests.GET("/:request_id/timeline/export", timelineHandler.ExportTimeline)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", paymentHandler.HandleProviderPush)
	}
}
