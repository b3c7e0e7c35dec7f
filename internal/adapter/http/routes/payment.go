package routes

import (
	"fastfood_payment/internal/adapter/http/handlers"
	"fastfood_payment/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPayment = "/payment"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookLimiter *middleware.IPRateLimiter) {
	payment := rg.Group(PathPayment)
	{
		payment.POST("", paymentHandler.CreatePayment)
		payment.POST("/webhook", middleware.RateLimit(webhookLimiter), paymentHandler.HandleWebhook)
		payment.GET("/:paymentId", paymentHandler.GetPayment)
	}
}
