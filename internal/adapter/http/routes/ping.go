package routes

import (
	"fastfood_payment/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/health", health.Health)
}
