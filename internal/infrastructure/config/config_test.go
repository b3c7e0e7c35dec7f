package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "ORDER_SERVICE_API", "ORDER_SERVICE_TIMEOUT", "MERCADOPAGO_QR_CODE_API", "MERCADOPAGO_POS_ID",
		"MERCADOPAGO_WEBHOOK", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "AWS_REGION", "PAYMENTS_TABLE",
		"PAYMENT_NOTIFICATIONS_TABLE", "WEBHOOK_DEDUP_ENABLED", "WEBHOOK_RATE_LIMIT_RPS", "WEBHOOK_RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 10*time.Second, cfg.OrderServiceTimeout)
	assert.Equal(t, "Loja1", cfg.MercadoPago.POSID)
	assert.Equal(t, "https://api.mercadopago.com/instore/orders/qr/seller/collectors", cfg.MercadoPago.QRCodeAPI)
	assert.False(t, cfg.MercadoPago.Mock)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "payments", cfg.DynamoDB.PaymentsTable)
	assert.Equal(t, "payment_notifications", cfg.DynamoDB.NotificationsTable)
	assert.False(t, cfg.WebhookDedupEnabled)
	assert.Equal(t, 20.0, cfg.WebhookRateLimitRPS)
	assert.Equal(t, 40, cfg.WebhookRateLimitBurst)
	assert.Empty(t, cfg.MercadoPago.NotificationURL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ORDER_SERVICE_API", "http://orders:3001/")
	t.Setenv("ORDER_SERVICE_TIMEOUT", "2s")
	t.Setenv("MERCADOPAGO_WEBHOOK", "https://pay.example.com/")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("WEBHOOK_DEDUP_ENABLED", "true")
	t.Setenv("WEBHOOK_RATE_LIMIT_RPS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "http://orders:3001", cfg.OrderServiceURL)
	assert.Equal(t, 2*time.Second, cfg.OrderServiceTimeout)
	assert.True(t, cfg.MercadoPago.Mock)
	assert.True(t, cfg.WebhookDedupEnabled)
	assert.Equal(t, 20.0, cfg.WebhookRateLimitRPS)
	assert.Equal(t, "https://pay.example.com/v1/payment/webhook", cfg.MercadoPago.NotificationURL())
}
