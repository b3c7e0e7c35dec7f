package response

import (
	"encoding/json"
	"testing"
	"time"

	"fastfood_payment/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:          "O1",
		Order:       entities.Order{IDOrder: "O1", Value: 20},
		PaymentLink: "data:image/png;base64,AAA",
		Status:      entities.PaymentStatusPaid,
		Total:       20,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromPayment(p)
	if res.PaymentID != "O1" || res.Status != "PAID" || res.Total != 20 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["paymentId"] != "O1" || body["paymentLink"] != p.PaymentLink {
		t.Fatalf("unexpected json: %s", raw)
	}
	order, _ := body["order"].(map[string]any)
	if items, ok := order["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %s", raw)
	}
}
