package routes

import (
	"log"
	"os"
	"strconv"

	_ "repairtrack/docs" // This will be auto-generated
	"repairtrack/internal/adapter/http/handlers"
	repository2 "repairtrack/internal/adapter/persistence/repository"
	"repairtrack/internal/infrastructure/database"
	"repairtrack/internal/infrastructure/notifications"
	"repairtrack/internal/infrastructure/payments"
	"repairtrack/internal/usecase"
	"repairtrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)

	notifier := notifications.NewLogNotifier()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pushHub := payments.NewPushHub()

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, auditRepo)
	workflowUseCase := usecase.NewStatusWorkflowUseCase(requestRepo, auditRepo, notifier)
	quoteUseCase := usecase.NewQuoteUseCase(requestRepo, auditRepo, workflowUseCase, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(requestRepo, auditRepo, paymentGateway, notifier)
	timelineUseCase := usecase.NewTimelineUseCase(requestRepo, auditRepo)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase, workflowUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, pushHub)
	timelineHandler := handlers.NewTimelineHandler(timelineUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRepairRoutes(v1, requestHandler, quoteHandler, paymentHandler, timelineHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
