package response

import (
	"time"

	"fastfood_payment/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID   string         `json:"paymentId"`
	Order       entities.Order `json:"order"`
	PaymentLink string         `json:"paymentLink"`
	Status      string         `json:"status"`
	Total       float64        `json:"total"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CreatePaymentResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	order := p.Order
	if order.Items == nil {
		order.Items = []entities.Product{}
	}
	return PaymentResponse{
		PaymentID:   p.ID,
		Order:       order,
		PaymentLink: p.PaymentLink,
		Status:      string(p.Status),
		Total:       p.Total,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
