package routes

import (
	"log"
	"strconv"

	_ "fastfood_payment/docs" // generated by swag init
	"fastfood_payment/internal/adapter/http/handlers"
	"fastfood_payment/internal/adapter/http/middleware"
	"fastfood_payment/internal/adapter/persistence/repository"
	"fastfood_payment/internal/infrastructure/config"
	"fastfood_payment/internal/infrastructure/database"
	"fastfood_payment/internal/infrastructure/orders"
	"fastfood_payment/internal/infrastructure/payments"
	"fastfood_payment/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := NewRouter(cfg, handlers.NewPaymentHandler(newPaymentUseCase(cfg)))

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter registers middlewares and every route on a fresh engine.
func NewRouter(cfg config.Config, paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addHealthRoutes(router, handlers.NewHealthHandler(cfg.AppEnv, cfg.AppName))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, middleware.NewIPRateLimiter(cfg.WebhookRateLimitRPS, cfg.WebhookRateLimitBurst))
	return router
}

func newPaymentUseCase(cfg config.Config) *usecase.PaymentUseCase {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	if cfg.OrderServiceURL == "" {
		log.Printf("Order service not configured: ORDER_SERVICE_API is empty")
	}
	orderClient := orders.NewOrderServiceClient(cfg.OrderServiceURL, cfg.OrderServiceTimeout)

	// A nil gateway keeps the service up; payment creation then fails upstream.
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	}

	uc := usecase.NewPaymentUseCase(paymentRepo, orderClient, mpGateway)
	if cfg.WebhookDedupEnabled {
		log.Printf("Webhook deduplication enabled table=%s", cfg.DynamoDB.NotificationsTable)
		uc.WithNotificationLedger(repository.NewNotificationDynamoLedger(ddb, cfg.DynamoDB.NotificationsTable))
	}
	return uc
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
