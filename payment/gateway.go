// Package payment adapts the Razorpay hosted-checkout API. Orders are
// written to the order store before the provider order is created, so a
// payment that never completes still leaves an auditable pending record.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

var (
	ErrUnavailable      = errors.New("payment gateway not configured")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// Provider calls are bounded; a hung gateway must not pin the checkout.
const providerTimeout = 15 * time.Second

// OrderStore is the slice of the order repository the gateway needs.
type OrderStore interface {
	Create(ctx context.Context, in models.OrderCreate) (*models.Order, error)
	AttachProviderOrder(ctx context.Context, orderNumber, providerOrderID string) error
	UpdatePayment(ctx context.Context, orderNumber, paymentStatus, paymentID string) error
}

// Gateway creates provider orders and verifies payment signatures.
type Gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	orders    OrderStore
	logger    *zap.Logger
}

// New returns a gateway. With empty credentials the gateway is kept but
// every call fails with ErrUnavailable, matching a deployment where the
// restaurant takes cash only.
func New(keyID, keySecret string, orders OrderStore, logger *zap.Logger) *Gateway {
	g := &Gateway{keyID: keyID, keySecret: keySecret, orders: orders, logger: logger}
	if keyID != "" && keySecret != "" {
		g.client = razorpay.NewClient(keyID, keySecret)
	}
	return g
}

// CreateOrder validates and stores the order, then opens a matching
// provider order denominated in paise.
func (g *Gateway) CreateOrder(ctx context.Context, req models.PaymentOrderRequest) (*models.PaymentOrder, error) {
	if g.client == nil {
		return nil, ErrUnavailable
	}

	cartItems := make([]models.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		cartItems = append(cartItems, models.OrderItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order, err := g.orders.Create(ctx, models.OrderCreate{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Landmark:      req.Landmark,
		CartItems:     cartItems,
		Notes:         req.Notes,
		OrderType:     req.OrderType,
		DeliveryArea:  req.DeliveryArea,
		PaymentMethod: "razorpay",
	})
	if err != nil {
		return nil, err
	}

	// razorpay-go does not accept a context; the deadline bounds our wait
	// on the call instead.
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	data := map[string]interface{}{
		"amount":          order.Total * 100,
		"currency":        "INR",
		"receipt":         order.OrderNumber,
		"payment_capture": 1,
	}

	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := g.client.Order.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	var body map[string]interface{}
	select {
	case res := <-done:
		if res.err != nil {
			g.logger.Error("provider order creation failed",
				zap.String("order_number", order.OrderNumber), zap.Error(res.err))
			return nil, fmt.Errorf("create provider order: %w", res.err)
		}
		body = res.body
	case <-ctx.Done():
		g.logger.Error("provider order creation timed out",
			zap.String("order_number", order.OrderNumber))
		return nil, ctx.Err()
	}

	providerOrderID, _ := body["id"].(string)
	if providerOrderID == "" {
		return nil, errors.New("provider returned no order id")
	}

	if err := g.orders.AttachProviderOrder(ctx, order.OrderNumber, providerOrderID); err != nil {
		return nil, err
	}

	g.logger.Info("provider order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("razorpay_order_id", providerOrderID))

	return &models.PaymentOrder{
		RazorpayOrderID: providerOrderID,
		OrderNumber:     order.OrderNumber,
		Amount:          order.Total,
		Currency:        "INR",
		KeyID:           g.keyID,
	}, nil
}

// VerifyPayment checks the provider signature over "order_id|payment_id".
// A mismatch marks the order's payment failed and returns
// ErrInvalidSignature; a match marks it paid.
func (g *Gateway) VerifyPayment(ctx context.Context, v models.PaymentVerification) error {
	if g.client == nil {
		return ErrUnavailable
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(v.RazorpayOrderID + "|" + v.RazorpayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(v.RazorpaySignature)) {
		if err := g.orders.UpdatePayment(ctx, v.OrderNumber, "failed", ""); err != nil {
			g.logger.Warn("marking payment failed",
				zap.String("order_number", v.OrderNumber), zap.Error(err))
		}
		return ErrInvalidSignature
	}

	if err := g.orders.UpdatePayment(ctx, v.OrderNumber, "paid", v.RazorpayPaymentID); err != nil {
		return err
	}

	g.logger.Info("payment verified", zap.String("order_number", v.OrderNumber))
	return nil
}

// Sign computes the signature the provider would send for the given order
// and payment IDs. Exposed for tests.
func Sign(keySecret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
