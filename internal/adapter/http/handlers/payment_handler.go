package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "fastfood_payment/internal/adapter/http/dto/request"
	response "fastfood_payment/internal/adapter/http/dto/response"
	"fastfood_payment/internal/usecase"
	"fastfood_payment/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for order payments and gateway
// notifications.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Create a payment for an order
// @Description  Issues a QR code on the payment gateway, stores the payment and patches the order.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Order to charge"
// @Success      201   {object}  response.CreatePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid create payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start order_id=%s", payload.Order.IDOrder)

	id, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToPayment())
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", payload.Order.IDOrder, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s", payload.Order.IDOrder, id)

	c.JSON(http.StatusCreated, response.CreatePaymentResponse{ID: id})
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payment
// @Produce      json
// @Param        paymentId  path      string  true  "Payment id (order id)"
// @Success      200        {object}  response.PaymentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payment/{paymentId} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("paymentId")

	p, err := h.usecase.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// HandleWebhook godoc
// @Summary      Receive a payment gateway notification
// @Description  Accepts {resource, topic} as JSON or as query parameters. Only merchant_order is acted on.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body      body      request.WebhookRequest  false  "Notification"
// @Param        topic     query     string                  false  "Notification topic"
// @Param        resource  query     string                  false  "Gateway resource URL"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      429       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /payment/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	body, err := readWebhookBody(c)
	if err != nil {
		log.Printf("[payment][handler] invalid webhook payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	var query request.WebhookRequest
	_ = c.ShouldBindQuery(&query)

	notification := body.Merge(query).ToNotification()
	log.Printf("[payment][handler] webhook received topic=%s resource=%s", notification.Topic, notification.Resource)

	if err := h.usecase.HandlePaymentWebhook(c.Request.Context(), notification); err != nil {
		log.Printf("[payment][handler] webhook failed topic=%s resource=%s err=%v", notification.Topic, notification.Resource, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "webhook processed"})
}

func readWebhookBody(c *gin.Context) (request.WebhookRequest, error) {
	var req request.WebhookRequest
	raw, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	return req, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderIDRequired):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Order id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderValueRequired):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_VALUE", "Order value must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order does not exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Payment already exists for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentTokenUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_TOKEN_UNAVAILABLE", "Failed to fetch QR code token", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentCodeGeneration):
		return pkg.NewDomainError("PAYMENT_CODE_GENERATION_FAILED", "Failed to generate QR code link", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentImageGeneration):
		return pkg.NewDomainError("PAYMENT_IMAGE_GENERATION_FAILED", "Failed to generate payment image", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidGatewayData):
		return pkg.NewDomainError("INVALID_GATEWAY_DATA", "Invalid gateway data", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderLookupFailed):
		return pkg.NewDomainError("ORDER_SERVICE_ERROR", "Failed to get order", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderUpdateFailed):
		return pkg.NewDomainError("ORDER_SERVICE_ERROR", "Failed to update order", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderStatusUpdateFailed):
		return pkg.NewDomainError("ORDER_SERVICE_ERROR", "Failed to update order status", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "Upstream service error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
