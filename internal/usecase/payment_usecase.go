package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/usecase/interfaces"
)

// Error kinds. Every concrete error below wraps exactly one of them so the
// HTTP layer can map by kind with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream error")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrOrderIDRequired         = fmt.Errorf("%w: order id required", ErrValidation)
	ErrOrderValueRequired      = fmt.Errorf("%w: order value required", ErrValidation)
	ErrOrderNotFound           = fmt.Errorf("%w: order does not exist", ErrNotFound)
	ErrPaymentNotFound         = fmt.Errorf("%w: payment not found", ErrNotFound)
	ErrPaymentTokenUnavailable = fmt.Errorf("%w: failed to fetch QR code token", ErrUpstream)
	ErrPaymentCodeGeneration   = fmt.Errorf("%w: failed to generate QR code link", ErrUpstream)
	ErrPaymentImageGeneration  = fmt.Errorf("%w: failed to generate payment image", ErrUpstream)
	ErrInvalidGatewayData      = fmt.Errorf("%w: invalid gateway data", ErrUpstream)
	ErrOrderLookupFailed       = fmt.Errorf("%w: failed to get order", ErrUpstream)
	ErrOrderUpdateFailed       = fmt.Errorf("%w: failed to update order", ErrUpstream)
	ErrOrderStatusUpdateFailed = fmt.Errorf("%w: failed to update order status", ErrUpstream)
	ErrPaymentAlreadyExists    = fmt.Errorf("%w: payment already exists for this order", ErrConflict)
)

// IPaymentUseCase coordinates the payment gateway, the order service and the
// payment table for a single payment per order.
//
// There is no shared transaction between the three collaborators. Every
// failure aborts the current call and nothing is compensated.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, payment entities.Payment) (string, error)
	GetPayment(ctx context.Context, id string) (entities.Payment, error)
	HandlePaymentWebhook(ctx context.Context, notification entities.PaymentNotification) error
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	orders  interfaces.IOrderGateway
	gateway interfaces.IPaymentGateway
	ledger  interfaces.INotificationLedger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orders interfaces.IOrderGateway, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orders: orders, gateway: gateway}
}

// WithNotificationLedger enables webhook deduplication. A nil ledger keeps
// every delivery being applied.
func (u *PaymentUseCase) WithNotificationLedger(ledger interfaces.INotificationLedger) *PaymentUseCase {
	u.ledger = ledger
	return u
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, payment entities.Payment) (string, error) {
	order := payment.Order
	order.IDOrder = strings.TrimSpace(order.IDOrder)
	log.Printf("[payment][usecase] create start order_id=%q value=%.2f items=%d", order.IDOrder, order.Value, len(order.Items))

	if order.IDOrder == "" {
		log.Printf("[payment][usecase] invalid order id (empty)")
		return "", ErrOrderIDRequired
	}
	if order.Value <= 0 {
		log.Printf("[payment][usecase] invalid order value order_id=%s value=%.2f", order.IDOrder, order.Value)
		return "", ErrOrderValueRequired
	}

	existing, err := u.orders.GetOrder(ctx, order.IDOrder)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", order.IDOrder, err)
		return "", fmt.Errorf("%w: %w", ErrOrderLookupFailed, err)
	}
	if existing.IDOrder == "" {
		log.Printf("[payment][usecase] order not found order_id=%s", order.IDOrder)
		return "", ErrOrderNotFound
	}
	order = mergeOrder(order, existing)

	credential, err := u.gateway.GetAccessCredential(ctx)
	if err != nil {
		log.Printf("[payment][usecase] gateway credential failed order_id=%s err=%v", order.IDOrder, err)
		return "", fmt.Errorf("%w: %w", ErrPaymentTokenUnavailable, err)
	}
	if credential.Token == "" || credential.AccountID == "" {
		log.Printf("[payment][usecase] gateway credential incomplete order_id=%s", order.IDOrder)
		return "", ErrPaymentTokenUnavailable
	}

	code, err := u.gateway.GeneratePaymentCode(ctx, credential, order)
	if err != nil {
		log.Printf("[payment][usecase] qr code generation failed order_id=%s err=%v", order.IDOrder, err)
		return "", fmt.Errorf("%w: %w", ErrPaymentCodeGeneration, err)
	}
	log.Printf("[payment][usecase] qr code generated order_id=%s in_store_order_id=%s", order.IDOrder, code.InStoreOrderID)

	link, err := u.gateway.RenderCode(ctx, code.QRData)
	if err != nil {
		log.Printf("[payment][usecase] qr code render failed order_id=%s err=%v", order.IDOrder, err)
		return "", fmt.Errorf("%w: %w", ErrPaymentImageGeneration, err)
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:          order.IDOrder,
		Order:       order,
		PaymentLink: link,
		Status:      entities.PaymentStatusAwaiting,
		Total:       order.Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed order_id=%s err=%v", order.IDOrder, err)
		if errors.Is(err, interfaces.ErrDuplicatePayment) {
			return "", ErrPaymentAlreadyExists
		}
		return "", err
	}
	log.Printf("[payment][usecase] payment stored order_id=%s payment_id=%s", order.IDOrder, id)

	// The payment stays stored if this patch fails; the caller gets the error.
	patch := order
	patch.PaymentID = id
	patch.PaymentLink = link
	if err := u.orders.UpdateOrder(ctx, order.IDOrder, patch); err != nil {
		log.Printf("[payment][usecase] order patch failed order_id=%s payment_id=%s err=%v", order.IDOrder, id, err)
		return "", fmt.Errorf("%w: %w", ErrOrderUpdateFailed, err)
	}

	log.Printf("[payment][usecase] create success order_id=%s payment_id=%s", order.IDOrder, id)
	return id, nil
}

// mergeOrder fills what the request left empty with the order service copy.
// Value always comes from the request.
func mergeOrder(requested, stored entities.Order) entities.Order {
	out := requested
	if out.IDClient == "" {
		out.IDClient = stored.IDClient
	}
	if out.CPF == "" {
		out.CPF = stored.CPF
	}
	if out.Name == "" {
		out.Name = stored.Name
	}
	if out.Email == "" {
		out.Email = stored.Email
	}
	if out.Status == "" {
		out.Status = stored.Status
	}
	if len(out.Items) == 0 {
		out.Items = stored.Items
	}
	return out
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) HandlePaymentWebhook(ctx context.Context, notification entities.PaymentNotification) error {
	if notification.Topic != entities.TopicMerchantOrder {
		log.Printf("[payment][webhook] ignored topic=%q resource=%q", notification.Topic, notification.Resource)
		return nil
	}
	log.Printf("[payment][webhook] start resource=%s", notification.Resource)

	resolved, err := u.gateway.GetStatusByReference(ctx, notification.Resource)
	if err != nil {
		log.Printf("[payment][webhook] gateway status lookup failed resource=%s err=%v", notification.Resource, err)
		return fmt.Errorf("%w: %w", ErrInvalidGatewayData, err)
	}
	if resolved.ID == "" || resolved.Status == "" {
		log.Printf("[payment][webhook] gateway returned incomplete data resource=%s id=%q status=%q", notification.Resource, resolved.ID, resolved.Status)
		return ErrInvalidGatewayData
	}

	paymentID := resolved.ID
	status := entities.NormalizePaymentStatus(resolved.Status)

	key := notificationKey(notification.Resource, status)
	if u.ledger != nil {
		seen, err := u.ledger.Exists(ctx, key)
		if err != nil {
			log.Printf("[payment][webhook] ledger lookup failed key=%s err=%v", key, err)
			return err
		}
		if seen {
			log.Printf("[payment][webhook] duplicate notification skipped payment_id=%s status=%s", paymentID, status)
			return nil
		}
	}

	payment, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		log.Printf("[payment][webhook] payment not found payment_id=%s", paymentID)
		return ErrPaymentNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		log.Printf("[payment][webhook] status update failed payment_id=%s status=%s err=%v", paymentID, status, err)
		return err
	}
	if updated.ID == "" {
		return ErrPaymentNotFound
	}
	log.Printf("[payment][webhook] status updated payment_id=%s status=%s", paymentID, status)

	if status == entities.PaymentStatusPaid {
		if err := u.orders.UpdateOrderStatus(ctx, paymentID, entities.OrderStatusReceived); err != nil {
			log.Printf("[payment][webhook] order status update failed order_id=%s err=%v", paymentID, err)
			return fmt.Errorf("%w: %w", ErrOrderStatusUpdateFailed, err)
		}
		log.Printf("[payment][webhook] order received order_id=%s", paymentID)
	}

	if u.ledger != nil {
		if err := u.ledger.Record(ctx, key, paymentID); err != nil {
			log.Printf("[payment][webhook] ledger record failed key=%s err=%v", key, err)
			return err
		}
	}
	return nil
}

func notificationKey(resource string, status entities.PaymentStatus) string {
	return strings.TrimSpace(resource) + "#" + string(status)
}
