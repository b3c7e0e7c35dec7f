package interfaces

import (
	"context"
	"fastfood_payment/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The payment-service uses it to issue an in-store QR code for an order, render
// it as an image and resolve the status of a webhook resource.
type IPaymentGateway interface {
	GetAccessCredential(ctx context.Context) (entities.GatewayCredential, error)
	GeneratePaymentCode(ctx context.Context, credential entities.GatewayCredential, order entities.Order) (entities.PaymentCode, error)
	RenderCode(ctx context.Context, qrData string) (string, error)
	GetStatusByReference(ctx context.Context, resource string) (entities.GatewayPaymentStatus, error)
}
