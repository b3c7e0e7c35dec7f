package interfaces

import (
	"context"
	"fastfood_payment/internal/domain/entities"
)

// IOrderGateway abstracts the external order service.
//
// GetOrder returns a zero Order (empty IDOrder) when the order does not exist.
type IOrderGateway interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, order entities.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error
}
