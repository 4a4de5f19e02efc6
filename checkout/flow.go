// Package checkout orchestrates order submission: form validation,
// minimum-order and serviceability gating, and the handoff to either
// cash-on-delivery order creation or the hosted payment gateway. Every
// failure is absorbed into a retryable Result; no error escapes the flow.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
)

// Payment methods offered at checkout.
const (
	MethodCOD      = "cod"
	MethodRazorpay = "razorpay"
)

// User-facing fallback messages.
const (
	msgFixErrors        = "Please fix the errors in the form"
	msgEmptyCart        = "Your cart is empty"
	msgNotServiceable   = "Delivery not available in your area"
	msgOrderFailed      = "Failed to place order. Please try again."
	msgPaymentFailed    = "Payment failed. You have not been charged."
	msgPaymentCancelled = "Payment cancelled. Your cart has been kept."
)

// OrderService creates orders, rejecting invalid ones with a
// models.ValidationError carrying a customer-facing detail.
type OrderService interface {
	Create(ctx context.Context, in models.OrderCreate) (*models.Order, error)
}

// PaymentGateway opens provider orders and verifies completed payments.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req models.PaymentOrderRequest) (*models.PaymentOrder, error)
	VerifyPayment(ctx context.Context, v models.PaymentVerification) error
}

// CartClearer is the only cart operation the flow performs, and only after
// a confirmed success.
type CartClearer interface {
	Clear(ctx context.Context, sessionID string)
}

// Request is one checkout attempt over the session's current cart and
// location selection.
type Request struct {
	SessionID     string
	Form          FormData
	PaymentMethod string
	Mode          string
	Area          string
	Lines         []models.CartLine
}

// Result is the outcome surfaced to the form. Exactly one of the failure
// fields is set on a failed attempt; Completed with an OrderNumber marks a
// placed (and for hosted payment, verified) order.
type Result struct {
	Completed   bool                 `json:"completed"`
	OrderNumber string               `json:"order_number,omitempty"`
	Payment     *models.PaymentOrder `json:"payment,omitempty"`
	FieldErrors map[string]string    `json:"field_errors,omitempty"`
	Message     string               `json:"message,omitempty"`
}

// Flow wires the checkout collaborators together.
type Flow struct {
	orders  OrderService
	gateway PaymentGateway
	cart    CartClearer
	logger  *zap.Logger
}

func NewFlow(orders OrderService, gateway PaymentGateway, cart CartClearer, logger *zap.Logger) *Flow {
	return &Flow{orders: orders, gateway: gateway, cart: cart, logger: logger}
}

// Submit runs one checkout attempt. Validation and threshold failures
// return before any network call; the cart is cleared only on a confirmed
// cash-on-delivery success. For hosted payment the returned Result carries
// the provider handle and completion waits for ConfirmPayment.
func (f *Flow) Submit(ctx context.Context, req Request) Result {
	form := req.Form.Sanitized()

	if fieldErrors := ValidateForm(form, req.Mode); len(fieldErrors) > 0 {
		return Result{FieldErrors: fieldErrors, Message: msgFixErrors}
	}
	if len(req.Lines) == 0 {
		return Result{Message: msgEmptyCart}
	}
	if req.Mode == pricing.ModeDelivery && !pricing.IsAreaServiceable(req.Area) {
		return Result{Message: msgNotServiceable}
	}

	subtotal := pricing.Subtotal(req.Lines)
	if !pricing.IsMinimumOrderMet(subtotal, req.Mode) {
		threshold := pricing.MinimumOrderThreshold(req.Mode)
		return Result{Message: fmt.Sprintf("Minimum order amount is %s", pricing.FormatPrice(threshold))}
	}

	address := form.Address
	if req.Mode == pricing.ModePickup {
		address = "Pickup from restaurant"
	}

	switch req.PaymentMethod {
	case MethodRazorpay:
		return f.submitHosted(ctx, req, form, address)
	default:
		return f.submitCOD(ctx, req, form, address)
	}
}

func (f *Flow) submitCOD(ctx context.Context, req Request, form FormData, address string) Result {
	order, err := f.orders.Create(ctx, models.OrderCreate{
		CustomerName:  form.Name,
		Phone:         form.Phone,
		Address:       address,
		Landmark:      form.Landmark,
		Items:         joinedSummary(req.Lines),
		CartItems:     orderItems(req.Lines),
		Notes:         form.Notes,
		OrderType:     req.Mode,
		DeliveryArea:  req.Area,
		PaymentMethod: MethodCOD,
	})
	if err != nil {
		return Result{Message: failureMessage(err)}
	}

	f.cart.Clear(ctx, req.SessionID)
	f.logger.Info("checkout completed",
		zap.String("order_number", order.OrderNumber),
		zap.String("payment_method", MethodCOD))
	return Result{Completed: true, OrderNumber: order.OrderNumber}
}

func (f *Flow) submitHosted(ctx context.Context, req Request, form FormData, address string) Result {
	cartItems := make([]models.PaymentCartItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		cartItems = append(cartItems, models.PaymentCartItem{
			ItemName: line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	payment, err := f.gateway.CreateOrder(ctx, models.PaymentOrderRequest{
		CustomerName: form.Name,
		Phone:        form.Phone,
		Address:      address,
		Landmark:     form.Landmark,
		CartItems:    cartItems,
		Notes:        form.Notes,
		OrderType:    req.Mode,
		DeliveryArea: req.Area,
	})
	if err != nil {
		return Result{Message: failureMessage(err)}
	}

	// Not completed yet: the cart survives until the provider callback is
	// verified in ConfirmPayment.
	return Result{OrderNumber: payment.OrderNumber, Payment: payment}
}

// ConfirmPayment handles the provider's success callback. Verification
// failure re-enables the form with the cart intact.
func (f *Flow) ConfirmPayment(ctx context.Context, sessionID string, v models.PaymentVerification) Result {
	if err := f.gateway.VerifyPayment(ctx, v); err != nil {
		f.logger.Warn("payment verification failed",
			zap.String("order_number", v.OrderNumber), zap.Error(err))
		return Result{Message: msgPaymentFailed}
	}

	f.cart.Clear(ctx, sessionID)
	f.logger.Info("checkout completed",
		zap.String("order_number", v.OrderNumber),
		zap.String("payment_method", MethodRazorpay))
	return Result{Completed: true, OrderNumber: v.OrderNumber}
}

// CancelPayment handles the customer dismissing the hosted payment UI. No
// order is confirmed and the cart is untouched.
func (f *Flow) CancelPayment(orderNumber string) Result {
	f.logger.Info("payment cancelled by customer", zap.String("order_number", orderNumber))
	return Result{Message: msgPaymentCancelled}
}

func joinedSummary(lines []models.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}
	return strings.Join(parts, ", ")
}

func orderItems(lines []models.CartLine) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ItemName: line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Subtotal: line.Price * line.Quantity,
		})
	}
	return items
}

// failureMessage surfaces a server-provided detail verbatim and falls back
// to a generic message otherwise.
func failureMessage(err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Detail
	}
	return msgOrderFailed
}
