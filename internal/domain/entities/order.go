package entities

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle status owned by the order service.
//
// Only the statuses this service reads or writes are declared here; any other
// value coming from the order service is carried through untouched.

type OrderStatus string

const (
	OrderStatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	OrderStatusReceived       OrderStatus = "RECEIVED"
)

// Product is a single order line item.
type Product struct {
	IDProduct   string  `json:"idProduct"`
	Name        string  `json:"name"`
	Observation string  `json:"observation,omitempty"`
	UnitValue   float64 `json:"unitValue"`
	Price       float64 `json:"price,omitempty"`
	Amount      int     `json:"amount"`
}

// Total returns amount x unit value, rounded to cents.
func (p Product) Total() float64 {
	total := decimal.NewFromFloat(p.UnitValue).
		Mul(decimal.NewFromInt(int64(p.Amount))).
		Round(2)
	return total.InexactFloat64()
}

// Order is the order record owned by the external order service.
//
// This service never creates or deletes orders. It reads them and patches
// PaymentID, PaymentLink and Status.
type Order struct {
	IDOrder     string      `json:"idOrder"`
	IDClient    string      `json:"idClient,omitempty"`
	CPF         string      `json:"cpf,omitempty"`
	Name        string      `json:"name,omitempty"`
	Email       string      `json:"email,omitempty"`
	Status      OrderStatus `json:"status,omitempty"`
	Value       float64     `json:"value"`
	Items       []Product   `json:"items"`
	PaymentID   string      `json:"paymentId,omitempty"`
	PaymentLink string      `json:"paymentLink,omitempty"`
}
