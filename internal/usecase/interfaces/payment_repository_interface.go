package interfaces

import (
	"context"
	"errors"
	"fastfood_payment/internal/domain/entities"
)

// ErrDuplicatePayment is returned by Create when a payment with the same id
// is already stored.
var ErrDuplicatePayment = errors.New("duplicate payment")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Lookups and updates are point operations by id. A zero Payment (empty ID)
// means the record does not exist.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (string, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
