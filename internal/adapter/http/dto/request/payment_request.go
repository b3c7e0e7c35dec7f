package request

import (
	"strings"

	"fastfood_payment/internal/domain/entities"
)

type ProductRequest struct {
	IDProduct   string  `json:"idProduct"`
	Name        string  `json:"name"`
	Observation string  `json:"observation"`
	UnitValue   float64 `json:"unitValue"`
	Price       float64 `json:"price"`
	Amount      int     `json:"amount"`
}

type OrderRequest struct {
	IDOrder  string           `json:"idOrder"`
	IDClient string           `json:"idClient"`
	CPF      string           `json:"cpf"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Status   string           `json:"status"`
	Value    float64          `json:"value"`
	Items    []ProductRequest `json:"items"`
}

// CreatePaymentRequest is the body of POST /v1/payment. Field validation is
// left to the use case so every rule yields the same error code.
type CreatePaymentRequest struct {
	Order OrderRequest `json:"order"`
}

func (r CreatePaymentRequest) ToPayment() entities.Payment {
	items := make([]entities.Product, 0, len(r.Order.Items))
	for _, it := range r.Order.Items {
		items = append(items, entities.Product{
			IDProduct:   strings.TrimSpace(it.IDProduct),
			Name:        it.Name,
			Observation: it.Observation,
			UnitValue:   it.UnitValue,
			Price:       it.Price,
			Amount:      it.Amount,
		})
	}
	return entities.Payment{
		Order: entities.Order{
			IDOrder:  strings.TrimSpace(r.Order.IDOrder),
			IDClient: r.Order.IDClient,
			CPF:      r.Order.CPF,
			Name:     r.Order.Name,
			Email:    r.Order.Email,
			Status:   entities.OrderStatus(r.Order.Status),
			Value:    r.Order.Value,
			Items:    items,
		},
	}
}

// WebhookRequest is the gateway notification. Mercado Pago sends it either as
// a JSON body or as query parameters (topic, resource or id).
type WebhookRequest struct {
	Resource string `json:"resource" form:"resource"`
	Topic    string `json:"topic" form:"topic"`
	ID       string `json:"-" form:"id"`
}

// Merge fills empty fields from q, typically the query string binding.
func (r WebhookRequest) Merge(q WebhookRequest) WebhookRequest {
	if strings.TrimSpace(r.Topic) == "" {
		r.Topic = q.Topic
	}
	if strings.TrimSpace(r.Resource) == "" {
		r.Resource = q.Resource
	}
	if strings.TrimSpace(r.Resource) == "" {
		r.Resource = q.ID
	}
	return r
}

func (r WebhookRequest) ToNotification() entities.PaymentNotification {
	return entities.PaymentNotification{
		Resource: strings.TrimSpace(r.Resource),
		Topic:    strings.TrimSpace(r.Topic),
	}
}
