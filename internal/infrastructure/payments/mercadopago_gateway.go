package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/infrastructure/config"
	"fastfood_payment/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/user"
	"github.com/skip2/go-qrcode"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrMercadoPagoUnauthorized         = errors.New("mercado pago unauthorized")
	ErrEmptyQRData                     = errors.New("empty qr data")
	ErrInvalidResource                 = errors.New("invalid merchant order resource")
)

const (
	qrImageSize       = 256
	qrOrderTitle      = "Product order"
	qrOrderDesc       = "FastFood sale"
	qrItemCategory    = "marketplace"
	qrItemUnitMeasure = "unit"
)

type userReader interface {
	Get(ctx context.Context) (*user.Response, error)
}

type merchantOrderReader interface {
	Get(ctx context.Context, id int) (*merchantorder.Response, error)
}

// MercadoPagoGateway issues in-store QR codes and resolves merchant order
// statuses on Mercado Pago.
//
// The SDK covers the user and merchant order endpoints; the instore QR
// endpoint is not part of it and is called over plain HTTP.
type MercadoPagoGateway struct {
	cfg            config.MercadoPagoConfig
	users          userReader
	merchantOrders merchantOrderReader
	httpClient     *http.Client
	mockMode       bool

	mu        sync.Mutex
	accountID string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{cfg: cfg, mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized pos_id=%s", cfg.POSID)

	return &MercadoPagoGateway{
		cfg:            cfg,
		users:          user.NewClient(sdkCfg),
		merchantOrders: merchantorder.NewClient(sdkCfg),
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		accountID:      cfg.UserID,
	}, nil
}

// GetAccessCredential returns the bearer token and the collector id. The
// collector id comes from MERCADOPAGO_USER_ID or, once, from the users API.
func (g *MercadoPagoGateway) GetAccessCredential(ctx context.Context) (entities.GatewayCredential, error) {
	if g != nil && g.mockMode {
		return entities.GatewayCredential{Token: "Bearer mock", AccountID: "mock"}, nil
	}
	if g == nil || g.users == nil {
		return entities.GatewayCredential{}, ErrMercadoPagoGatewayNotConfigured
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accountID == "" {
		resp, err := g.users.Get(ctx)
		if err != nil {
			log.Printf("[payment][gateway] user lookup failed err=%v", err)
			return entities.GatewayCredential{}, err
		}
		if resp != nil && resp.ID != 0 {
			g.accountID = strconv.Itoa(resp.ID)
			log.Printf("[payment][gateway] collector resolved user_id=%s", g.accountID)
		}
	}

	return entities.GatewayCredential{Token: "Bearer " + g.cfg.AccessToken, AccountID: g.accountID}, nil
}

type qrOrderItem struct {
	SkuNumber   string  `json:"sku_number"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	UnitMeasure string  `json:"unit_measure"`
	TotalAmount float64 `json:"total_amount"`
	Quantity    int     `json:"quantity"`
}

type qrOrderRequest struct {
	ExternalReference string        `json:"external_reference"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	NotificationURL   string        `json:"notification_url,omitempty"`
	TotalAmount       float64       `json:"total_amount"`
	Items             []qrOrderItem `json:"items"`
}

func newQROrderRequest(order entities.Order, notificationURL string) qrOrderRequest {
	items := make([]qrOrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, qrOrderItem{
			SkuNumber:   it.IDProduct,
			Category:    qrItemCategory,
			Title:       it.Name,
			Description: it.Observation,
			UnitPrice:   it.UnitValue,
			UnitMeasure: qrItemUnitMeasure,
			TotalAmount: it.Total(),
			Quantity:    it.Amount,
		})
	}
	return qrOrderRequest{
		ExternalReference: order.IDOrder,
		Title:             qrOrderTitle,
		Description:       qrOrderDesc,
		NotificationURL:   notificationURL,
		TotalAmount:       order.Value,
		Items:             items,
	}
}

// APIError is a non-2xx answer of the instore QR endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercado pago qr api: status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrMercadoPagoUnauthorized
	}
	return nil
}

func (g *MercadoPagoGateway) GeneratePaymentCode(ctx context.Context, credential entities.GatewayCredential, order entities.Order) (entities.PaymentCode, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock qr start order_id=%s", order.IDOrder)
		return entities.PaymentCode{
			QRData:         fmt.Sprintf("mock-qr|%s|%.2f", order.IDOrder, order.Value),
			InStoreOrderID: "mock-" + order.IDOrder,
		}, nil
	}
	if g == nil || g.httpClient == nil {
		return entities.PaymentCode{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload, err := json.Marshal(newQROrderRequest(order, g.cfg.NotificationURL()))
	if err != nil {
		return entities.PaymentCode{}, err
	}
	target := fmt.Sprintf("%s/%s/pos/%s/qrs", g.cfg.QRCodeAPI, url.PathEscape(credential.AccountID), url.PathEscape(g.cfg.POSID))
	log.Printf("[payment][gateway] qr create start order_id=%s items=%d payload_len=%d", order.IDOrder, len(order.Items), len(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return entities.PaymentCode{}, err
	}
	req.Header.Set("Authorization", credential.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] qr create request failed order_id=%s err=%v", order.IDOrder, err)
		return entities.PaymentCode{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PaymentCode{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][gateway] qr create failed order_id=%s status=%d", order.IDOrder, resp.StatusCode)
		return entities.PaymentCode{}, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var code entities.PaymentCode
	if err := json.Unmarshal(body, &code); err != nil {
		log.Printf("[payment][gateway] qr response unmarshal failed order_id=%s err=%v", order.IDOrder, err)
		return entities.PaymentCode{}, err
	}
	if code.QRData == "" {
		return entities.PaymentCode{}, ErrEmptyQRData
	}
	log.Printf("[payment][gateway] qr create success order_id=%s in_store_order_id=%s", order.IDOrder, code.InStoreOrderID)
	return code, nil
}

// RenderCode encodes the QR payload as a PNG data URL.
func (g *MercadoPagoGateway) RenderCode(_ context.Context, qrData string) (string, error) {
	if strings.TrimSpace(qrData) == "" {
		return "", ErrEmptyQRData
	}
	png, err := qrcode.Encode(qrData, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// GetStatusByReference resolves a merchant order resource, e.g.
// https://api.mercadolibre.com/merchant_orders/27361530909, into its external
// reference and order status.
//
// In mock mode the last path segment of the resource is taken as the external
// reference and the order is reported as paid.
func (g *MercadoPagoGateway) GetStatusByReference(ctx context.Context, resource string) (entities.GatewayPaymentStatus, error) {
	if g != nil && g.mockMode {
		ref := lastSegment(resource)
		if ref == "" {
			return entities.GatewayPaymentStatus{}, ErrInvalidResource
		}
		log.Printf("[payment][gateway] mock status resource=%s external_reference=%s", resource, ref)
		return entities.GatewayPaymentStatus{ID: ref, Status: "paid"}, nil
	}
	if g == nil || g.merchantOrders == nil {
		return entities.GatewayPaymentStatus{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := merchantOrderID(resource)
	if err != nil {
		log.Printf("[payment][gateway] invalid resource resource=%q", resource)
		return entities.GatewayPaymentStatus{}, err
	}

	mo, err := g.merchantOrders.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] merchant order lookup failed merchant_order_id=%d err=%v", id, err)
		return entities.GatewayPaymentStatus{}, err
	}
	if mo == nil {
		return entities.GatewayPaymentStatus{}, nil
	}
	log.Printf("[payment][gateway] merchant order resolved merchant_order_id=%d external_reference=%s order_status=%s", id, mo.ExternalReference, mo.OrderStatus)
	return entities.GatewayPaymentStatus{ID: mo.ExternalReference, Status: mo.OrderStatus}, nil
}

// merchantOrderID accepts a resource URL ending in the numeric id, a bare id,
// or a URL carrying ?id=.
func merchantOrderID(resource string) (int, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return 0, ErrInvalidResource
	}
	if id, err := strconv.Atoi(resource); err == nil {
		return id, nil
	}

	u, err := url.Parse(resource)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResource, err)
	}
	candidate := path.Base(strings.TrimRight(u.Path, "/"))
	if q := u.Query().Get("id"); q != "" {
		candidate = q
	}
	id, err := strconv.Atoi(candidate)
	if err != nil || id <= 0 {
		return 0, ErrInvalidResource
	}
	return id, nil
}

func lastSegment(resource string) string {
	resource = strings.TrimRight(strings.TrimSpace(resource), "/")
	if resource == "" {
		return ""
	}
	if i := strings.LastIndex(resource, "/"); i >= 0 {
		return resource[i+1:]
	}
	return resource
}
