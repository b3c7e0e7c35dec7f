package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/infrastructure/config"

	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	calls int
	resp  *user.Response
	err   error
}

func (f *fakeUsers) Get(context.Context) (*user.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fakeMerchantOrders struct {
	gotID int
	resp  *merchantorder.Response
	err   error
}

func (f *fakeMerchantOrders) Get(_ context.Context, id int) (*merchantorder.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

func burgerOrder() entities.Order {
	return entities.Order{
		IDOrder: "O1",
		Value:   20,
		Items: []entities.Product{
			{IDProduct: "P1", Name: "Burger", Observation: "no onion", UnitValue: 10, Amount: 2},
		},
	}
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(config.MercadoPagoConfig{})
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode does not need a token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{Mock: true})
		require.NoError(t, err)
		assert.True(t, g.mockMode)
	})
}

func TestGetAccessCredential(t *testing.T) {
	t.Run("configured user id skips lookup", func(t *testing.T) {
		users := &fakeUsers{}
		g := &MercadoPagoGateway{cfg: config.MercadoPagoConfig{AccessToken: "tok"}, users: users, accountID: "123"}

		cred, err := g.GetAccessCredential(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", cred.Token)
		assert.Equal(t, "123", cred.AccountID)
		assert.Zero(t, users.calls)
	})

	t.Run("resolves user id once", func(t *testing.T) {
		users := &fakeUsers{resp: &user.Response{ID: 987}}
		g := &MercadoPagoGateway{cfg: config.MercadoPagoConfig{AccessToken: "tok"}, users: users}

		for i := 0; i < 2; i++ {
			cred, err := g.GetAccessCredential(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "987", cred.AccountID)
		}
		assert.Equal(t, 1, users.calls)
	})

	t.Run("lookup error", func(t *testing.T) {
		boom := errors.New("boom")
		g := &MercadoPagoGateway{cfg: config.MercadoPagoConfig{AccessToken: "tok"}, users: &fakeUsers{err: boom}}

		_, err := g.GetAccessCredential(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("mock", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		cred, err := g.GetAccessCredential(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, cred.Token)
		assert.NotEmpty(t, cred.AccountID)
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.GetAccessCredential(context.Background())
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})
}

func newQRGateway(t *testing.T, handler http.HandlerFunc) *MercadoPagoGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &MercadoPagoGateway{
		cfg: config.MercadoPagoConfig{
			AccessToken:    "tok",
			QRCodeAPI:      srv.URL + "/instore/orders/qr/seller/collectors",
			POSID:          "Loja1",
			WebhookBaseURL: "https://payments.example.com/",
		},
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestGeneratePaymentCode(t *testing.T) {
	cred := entities.GatewayCredential{Token: "Bearer tok", AccountID: "123"}

	t.Run("success", func(t *testing.T) {
		var got qrOrderRequest
		g := newQRGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/instore/orders/qr/seller/collectors/123/pos/Loja1/qrs", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = io.WriteString(w, `{"qr_data":"000201-qr","in_store_order_id":"abc"}`)
		})

		code, err := g.GeneratePaymentCode(context.Background(), cred, burgerOrder())
		require.NoError(t, err)
		assert.Equal(t, "000201-qr", code.QRData)
		assert.Equal(t, "abc", code.InStoreOrderID)

		assert.Equal(t, "O1", got.ExternalReference)
		assert.Equal(t, "Product order", got.Title)
		assert.Equal(t, "FastFood sale", got.Description)
		assert.Equal(t, "https://payments.example.com/v1/payment/webhook", got.NotificationURL)
		assert.Equal(t, 20.0, got.TotalAmount)
		require.Len(t, got.Items, 1)
		item := got.Items[0]
		assert.Equal(t, "P1", item.SkuNumber)
		assert.Equal(t, "marketplace", item.Category)
		assert.Equal(t, "Burger", item.Title)
		assert.Equal(t, "no onion", item.Description)
		assert.Equal(t, "unit", item.UnitMeasure)
		assert.Equal(t, 10.0, item.UnitPrice)
		assert.Equal(t, 20.0, item.TotalAmount)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("unauthorized", func(t *testing.T) {
		g := newQRGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"invalid token"}`)
		})

		_, err := g.GeneratePaymentCode(context.Background(), cred, burgerOrder())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMercadoPagoUnauthorized)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("server error", func(t *testing.T) {
		g := newQRGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := g.GeneratePaymentCode(context.Background(), cred, burgerOrder())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.NotErrorIs(t, err, ErrMercadoPagoUnauthorized)
	})

	t.Run("empty qr data", func(t *testing.T) {
		g := newQRGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{}`)
		})

		_, err := g.GeneratePaymentCode(context.Background(), cred, burgerOrder())
		assert.ErrorIs(t, err, ErrEmptyQRData)
	})

	t.Run("mock", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		code, err := g.GeneratePaymentCode(context.Background(), cred, burgerOrder())
		require.NoError(t, err)
		assert.Equal(t, "mock-qr|O1|20.00", code.QRData)
	})
}

func TestRenderCode(t *testing.T) {
	g := &MercadoPagoGateway{}

	link, err := g.RenderCode(context.Background(), "000201-qr")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(link, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = g.RenderCode(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyQRData)
}

func TestGetStatusByReference(t *testing.T) {
	t.Run("resolves merchant order", func(t *testing.T) {
		mo := &fakeMerchantOrders{resp: &merchantorder.Response{ExternalReference: "O1", OrderStatus: "paid"}}
		g := &MercadoPagoGateway{merchantOrders: mo}

		st, err := g.GetStatusByReference(context.Background(), "https://api.mercadolibre.com/merchant_orders/27361530909")
		require.NoError(t, err)
		assert.Equal(t, 27361530909, mo.gotID)
		assert.Equal(t, entities.GatewayPaymentStatus{ID: "O1", Status: "paid"}, st)
	})

	t.Run("invalid resource never reaches the sdk", func(t *testing.T) {
		mo := &fakeMerchantOrders{}
		g := &MercadoPagoGateway{merchantOrders: mo}

		_, err := g.GetStatusByReference(context.Background(), "https://api.mercadolibre.com/merchant_orders/abc")
		assert.ErrorIs(t, err, ErrInvalidResource)
		assert.Zero(t, mo.gotID)
	})

	t.Run("sdk error", func(t *testing.T) {
		boom := errors.New("boom")
		g := &MercadoPagoGateway{merchantOrders: &fakeMerchantOrders{err: boom}}

		_, err := g.GetStatusByReference(context.Background(), "42")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil response is empty", func(t *testing.T) {
		g := &MercadoPagoGateway{merchantOrders: &fakeMerchantOrders{}}

		st, err := g.GetStatusByReference(context.Background(), "42")
		require.NoError(t, err)
		assert.Empty(t, st.ID)
	})

	t.Run("mock reports paid", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}

		st, err := g.GetStatusByReference(context.Background(), "mock://merchant_orders/O1/")
		require.NoError(t, err)
		assert.Equal(t, entities.GatewayPaymentStatus{ID: "O1", Status: "paid"}, st)
	})
}

func TestMerchantOrderID(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		want     int
		wantErr  bool
	}{
		{"url", "https://api.mercadolibre.com/merchant_orders/123", 123, false},
		{"trailing slash", "https://api.mercadolibre.com/merchant_orders/123/", 123, false},
		{"bare id", " 77 ", 77, false},
		{"query id", "https://api.mercadolibre.com/merchant_orders?id=55", 55, false},
		{"empty", "", 0, true},
		{"not numeric", "https://api.mercadolibre.com/merchant_orders/x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := merchantOrderID(tt.resource)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
