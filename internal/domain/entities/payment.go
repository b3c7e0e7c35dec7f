package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the payment status as last reported by the gateway.
//
// AWAITING is set on creation and PAID is the only status that triggers a
// side effect. Other gateway statuses (OPENED, EXPIRED, ...) are stored as-is.

type PaymentStatus string

const (
	PaymentStatusAwaiting PaymentStatus = "AWAITING"
	PaymentStatusPaid     PaymentStatus = "PAID"
)

// NormalizePaymentStatus upper-cases a gateway status so it can be compared
// with the PaymentStatus constants.
func NormalizePaymentStatus(raw string) PaymentStatus {
	return PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// Payment is the payment entity persisted by the payment-service.
//
// Storage model (DynamoDB):
//   - PK: id (equals Order.IDOrder, so there is at most one payment per order)
//
// Order is a snapshot taken at creation time, not a live reference.
// Total never changes after creation.

type Payment struct {
	ID          string        `json:"paymentId"`
	Order       Order         `json:"order"`
	PaymentLink string        `json:"paymentLink"`
	Status      PaymentStatus `json:"status"`
	Total       float64       `json:"total"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
