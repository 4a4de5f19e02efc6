package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
)

type fakeOrders struct {
	calls int
	last  models.OrderCreate
	err   error
}

func (f *fakeOrders) Create(_ context.Context, in models.OrderCreate) (*models.Order, error) {
	f.calls++
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Order{OrderNumber: "ORD-20260901-CR1042"}, nil
}

type fakeGateway struct {
	createCalls int
	verifyErr   error
	createErr   error
}

func (f *fakeGateway) CreateOrder(_ context.Context, req models.PaymentOrderRequest) (*models.PaymentOrder, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	subtotal := 0
	for _, item := range req.CartItems {
		subtotal += item.Price * item.Quantity
	}
	return &models.PaymentOrder{
		RazorpayOrderID: "order_test123",
		OrderNumber:     "ORD-20260901-CR1042",
		Amount:          subtotal + pricing.DeliveryCharge(req.DeliveryArea, req.OrderType),
		Currency:        "INR",
		KeyID:           "rzp_test_key",
	}, nil
}

func (f *fakeGateway) VerifyPayment(context.Context, models.PaymentVerification) error {
	return f.verifyErr
}

type fakeCart struct {
	cleared int
}

func (f *fakeCart) Clear(context.Context, string) { f.cleared++ }

func validForm() FormData {
	return FormData{
		Name:    "Aswin Kumar",
		Phone:   "9876543210",
		Address: "12 Main Street, Potheri, Chengalpattu",
	}
}

func deliveryLines() []models.CartLine {
	return []models.CartLine{
		{ID: "chicken-biryani-", Name: "Chicken Biryani", Price: 180, Quantity: 1},
		{ID: "gobi-65-", Name: "Gobi 65", Price: 70, Quantity: 1},
	}
}

func newFlow() (*Flow, *fakeOrders, *fakeGateway, *fakeCart) {
	orders := &fakeOrders{}
	gateway := &fakeGateway{}
	cartStore := &fakeCart{}
	return NewFlow(orders, gateway, cartStore, zap.NewNop()), orders, gateway, cartStore
}

func TestSubmitCODSuccess(t *testing.T) {
	flow, orders, _, cartStore := newFlow()

	res := flow.Submit(context.Background(), Request{
		SessionID:     "sess1",
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         deliveryLines(),
	})

	require.True(t, res.Completed)
	assert.Equal(t, "ORD-20260901-CR1042", res.OrderNumber)
	assert.Equal(t, 1, cartStore.cleared, "cart cleared on confirmed success")

	require.Equal(t, 1, orders.calls)
	assert.Equal(t, "1x Chicken Biryani, 1x Gobi 65", orders.last.Items)
	assert.Equal(t, "cod", orders.last.PaymentMethod)
	assert.Equal(t, 180, orders.last.CartItems[0].Subtotal)
}

func TestSubmitBlockedUnderMinimumMakesNoNetworkCall(t *testing.T) {
	flow, orders, gateway, cartStore := newFlow()

	res := flow.Submit(context.Background(), Request{
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         []models.CartLine{{ID: "parotta-", Name: "Parotta", Price: 25, Quantity: 4}},
	})

	assert.False(t, res.Completed)
	assert.Equal(t, "Minimum order amount is ₹199", res.Message)
	assert.Zero(t, orders.calls)
	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, cartStore.cleared, "cart unchanged")
}

func TestSubmitPickupHasNoMinimum(t *testing.T) {
	flow, orders, _, _ := newFlow()

	res := flow.Submit(context.Background(), Request{
		Form:          FormData{Name: "Aswin", Phone: "9876543210"},
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModePickup,
		Lines:         []models.CartLine{{ID: "parotta-", Name: "Parotta", Price: 25, Quantity: 1}},
	})

	require.True(t, res.Completed)
	assert.Equal(t, "Pickup from restaurant", orders.last.Address)
	assert.Equal(t, pricing.ModePickup, orders.last.OrderType)
}

func TestSubmitValidationFailureStopsEarly(t *testing.T) {
	flow, orders, gateway, _ := newFlow()

	res := flow.Submit(context.Background(), Request{
		Form:          FormData{Name: "A", Phone: "1234567890"},
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         deliveryLines(),
	})

	assert.False(t, res.Completed)
	assert.Contains(t, res.FieldErrors, "name")
	assert.Contains(t, res.FieldErrors, "phone")
	assert.Zero(t, orders.calls)
	assert.Zero(t, gateway.createCalls)
}

func TestSubmitEmptyCart(t *testing.T) {
	flow, orders, _, _ := newFlow()

	res := flow.Submit(context.Background(), Request{
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModePickup,
	})

	assert.False(t, res.Completed)
	assert.Equal(t, "Your cart is empty", res.Message)
	assert.Zero(t, orders.calls)
}

func TestSubmitUnserviceableAreaRejected(t *testing.T) {
	flow, orders, _, _ := newFlow()

	res := flow.Submit(context.Background(), Request{
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Chennai Central",
		Lines:         deliveryLines(),
	})

	assert.False(t, res.Completed)
	assert.Equal(t, "Delivery not available in your area", res.Message)
	assert.Zero(t, orders.calls, "no order attempted despite zero delivery charge fallback")
}

func TestSubmitSurfacesServerDetail(t *testing.T) {
	flow, orders, _, cartStore := newFlow()
	orders.err = models.NewValidationError("Minimum order amount is ₹199")

	res := flow.Submit(context.Background(), Request{
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         deliveryLines(),
	})

	assert.False(t, res.Completed)
	assert.Equal(t, "Minimum order amount is ₹199", res.Message)
	assert.Zero(t, cartStore.cleared, "cart kept on failure")
}

func TestSubmitGenericFallbackOnUnknownError(t *testing.T) {
	flow, orders, _, _ := newFlow()
	orders.err = errors.New("dial tcp: connection refused")

	res := flow.Submit(context.Background(), Request{
		Form:          validForm(),
		PaymentMethod: MethodCOD,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         deliveryLines(),
	})

	assert.Equal(t, "Failed to place order. Please try again.", res.Message)
}

func TestSubmitHostedReturnsProviderHandle(t *testing.T) {
	flow, _, gateway, cartStore := newFlow()

	res := flow.Submit(context.Background(), Request{
		SessionID:     "sess1",
		Form:          validForm(),
		PaymentMethod: MethodRazorpay,
		Mode:          pricing.ModeDelivery,
		Area:          "Potheri",
		Lines:         deliveryLines(),
	})

	assert.False(t, res.Completed, "hosted payment completes only after verification")
	require.NotNil(t, res.Payment)
	assert.Equal(t, "order_test123", res.Payment.RazorpayOrderID)
	assert.Equal(t, 270, res.Payment.Amount, "250 subtotal + 20 delivery")
	assert.Equal(t, 1, gateway.createCalls)
	assert.Zero(t, cartStore.cleared, "cart survives until verification")
}

func TestConfirmPaymentSuccessClearsCart(t *testing.T) {
	flow, _, _, cartStore := newFlow()

	res := flow.ConfirmPayment(context.Background(), "sess1", models.PaymentVerification{
		RazorpayOrderID:   "order_test123",
		RazorpayPaymentID: "pay_test456",
		RazorpaySignature: "sig",
		OrderNumber:       "ORD-20260901-CR1042",
	})

	assert.True(t, res.Completed)
	assert.Equal(t, "ORD-20260901-CR1042", res.OrderNumber)
	assert.Equal(t, 1, cartStore.cleared)
}

func TestConfirmPaymentFailureKeepsCart(t *testing.T) {
	flow, _, gateway, cartStore := newFlow()
	gateway.verifyErr = errors.New("invalid payment signature")

	res := flow.ConfirmPayment(context.Background(), "sess1", models.PaymentVerification{
		OrderNumber: "ORD-20260901-CR1042",
	})

	assert.False(t, res.Completed)
	assert.Equal(t, "Payment failed. You have not been charged.", res.Message)
	assert.Zero(t, cartStore.cleared)
}

func TestCancelPayment(t *testing.T) {
	flow, _, _, cartStore := newFlow()

	res := flow.CancelPayment("ORD-20260901-CR1042")
	assert.False(t, res.Completed)
	assert.Equal(t, "Payment cancelled. Your cart has been kept.", res.Message)
	assert.Zero(t, cartStore.cleared)
}
