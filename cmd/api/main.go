package main

import (
	_ "fastfood_payment/docs"
	"fastfood_payment/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fast Food Payment API
// @version         1.0
// @description     Payment service for fast food orders: Mercado Pago QR codes, DynamoDB storage and order status propagation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
