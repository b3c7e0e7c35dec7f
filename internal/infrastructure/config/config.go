package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration of the payment-service, read from the
// environment (a local .env is loaded by godotenv in cmd/api).
type Config struct {
	Port    int
	AppEnv  string
	AppName string

	OrderServiceURL     string
	OrderServiceTimeout time.Duration

	MercadoPago MercadoPagoConfig
	DynamoDB    DynamoDBConfig

	WebhookDedupEnabled   bool
	WebhookRateLimitRPS   float64
	WebhookRateLimitBurst int
}

type MercadoPagoConfig struct {
	AccessToken string
	UserID      string
	QRCodeAPI   string
	POSID       string
	// WebhookBaseURL is the public base URL the gateway calls back.
	WebhookBaseURL string
	Timeout        time.Duration
	Mock           bool
}

// NotificationURL is the callback sent along with every QR code request.
func (c MercadoPagoConfig) NotificationURL() string {
	if c.WebhookBaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.WebhookBaseURL, "/") + "/v1/payment/webhook"
}

// DynamoDBConfig supports local DynamoDB: DynamoDB Local does not validate
// credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	Endpoint           string
	PaymentsTable      string
	NotificationsTable string
}

func Load() Config {
	return Config{
		Port:                getenvInt("PORT", 8080),
		AppEnv:              getenvDefault("APP_ENV", "development"),
		AppName:             getenvDefault("APP_NAME", "Fast Food Payment"),
		OrderServiceURL:     strings.TrimRight(os.Getenv("ORDER_SERVICE_API"), "/"),
		OrderServiceTimeout: getenvDuration("ORDER_SERVICE_TIMEOUT", 10*time.Second),
		MercadoPago: MercadoPagoConfig{
			AccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			UserID:         strings.TrimSpace(os.Getenv("MERCADOPAGO_USER_ID")),
			QRCodeAPI:      strings.TrimRight(getenvDefault("MERCADOPAGO_QR_CODE_API", "https://api.mercadopago.com/instore/orders/qr/seller/collectors"), "/"),
			POSID:          getenvDefault("MERCADOPAGO_POS_ID", "Loja1"),
			WebhookBaseURL: os.Getenv("MERCADOPAGO_WEBHOOK"),
			Timeout:        getenvDuration("MERCADOPAGO_TIMEOUT", 10*time.Second),
			Mock:           getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		},
		DynamoDB: DynamoDBConfig{
			Region:             getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:        getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:    getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:           os.Getenv("DYNAMODB_ENDPOINT"),
			PaymentsTable:      getenvDefault("PAYMENTS_TABLE", "payments"),
			NotificationsTable: getenvDefault("PAYMENT_NOTIFICATIONS_TABLE", "payment_notifications"),
		},
		WebhookDedupEnabled:   getenvBool("WEBHOOK_DEDUP_ENABLED"),
		WebhookRateLimitRPS:   getenvFloat("WEBHOOK_RATE_LIMIT_RPS", 20),
		WebhookRateLimitBurst: getenvInt("WEBHOOK_RATE_LIMIT_BURST", 40),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
