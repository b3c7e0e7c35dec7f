package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/usecase/interfaces"
)

var ErrOrderServiceNotConfigured = errors.New("order service not configured")

// OrderServiceClient talks to the order service REST API:
//
//	GET   {base}/order/{id}
//	PUT   {base}/order/{id}
//	PATCH {base}/order/{id}/status
type OrderServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IOrderGateway = (*OrderServiceClient)(nil)

func NewOrderServiceClient(baseURL string, timeout time.Duration) *OrderServiceClient {
	return &OrderServiceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for any non-2xx answer of the order service.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("order service %s: unexpected status %d", e.Op, e.StatusCode)
}

func (c *OrderServiceClient) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	resp, err := c.do(ctx, http.MethodGet, c.orderURL(id), nil)
	if err != nil {
		log.Printf("[payment][orders] get failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Printf("[payment][orders] get not-found order_id=%s", id)
		return entities.Order{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][orders] get failed order_id=%s status=%d", id, resp.StatusCode)
		return entities.Order{}, &StatusError{Op: "get order", StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Order{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return entities.Order{}, nil
	}

	var order entities.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		log.Printf("[payment][orders] get decode failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	return order, nil
}

func (c *OrderServiceClient) UpdateOrder(ctx context.Context, id string, order entities.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return c.send(ctx, "update order", http.MethodPut, c.orderURL(id), body)
}

func (c *OrderServiceClient) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	return c.send(ctx, "update order status", http.MethodPatch, c.orderURL(id)+"/status", body)
}

func (c *OrderServiceClient) send(ctx context.Context, op, method, target string, body []byte) error {
	resp, err := c.do(ctx, method, target, body)
	if err != nil {
		log.Printf("[payment][orders] %s failed url=%s err=%v", op, target, err)
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][orders] %s failed url=%s status=%d", op, target, resp.StatusCode)
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	log.Printf("[payment][orders] %s success url=%s", op, target)
	return nil
}

func (c *OrderServiceClient) do(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrOrderServiceNotConfigured
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func (c *OrderServiceClient) orderURL(id string) string {
	return c.baseURL + "/order/" + url.PathEscape(id)
}
