package entities

// TopicMerchantOrder is the only webhook topic this service acts on.
const TopicMerchantOrder = "merchant_order"

// GatewayCredential is what the payment gateway needs to issue a QR code:
// an Authorization header value and the collector (seller) account id.
type GatewayCredential struct {
	Token     string
	AccountID string
}

// PaymentCode is the QR payload returned by the gateway for an order.
type PaymentCode struct {
	QRData         string `json:"qr_data"`
	InStoreOrderID string `json:"in_store_order_id,omitempty"`
}

// GatewayPaymentStatus is the resolved status of a gateway resource.
// ID correlates to Payment.ID (the gateway external reference).
type GatewayPaymentStatus struct {
	ID     string
	Status string
}

// PaymentNotification is the webhook body pushed by the gateway.
type PaymentNotification struct {
	Resource string `json:"resource"`
	Topic    string `json:"topic"`
}
