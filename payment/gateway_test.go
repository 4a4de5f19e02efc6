package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

type fakeOrderStore struct {
	payments map[string]string // order number -> payment status
	lastID   string
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{payments: map[string]string{"ORD-20260901-CR1042": "pending"}}
}

func (f *fakeOrderStore) Create(_ context.Context, in models.OrderCreate) (*models.Order, error) {
	return &models.Order{OrderNumber: "ORD-20260901-CR1042", Total: 270}, nil
}

func (f *fakeOrderStore) AttachProviderOrder(_ context.Context, orderNumber, providerOrderID string) error {
	return nil
}

func (f *fakeOrderStore) UpdatePayment(_ context.Context, orderNumber, paymentStatus, paymentID string) error {
	f.payments[orderNumber] = paymentStatus
	f.lastID = paymentID
	return nil
}

func TestUnconfiguredGateway(t *testing.T) {
	g := New("", "", newFakeOrderStore(), zap.NewNop())

	_, err := g.CreateOrder(context.Background(), models.PaymentOrderRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = g.VerifyPayment(context.Background(), models.PaymentVerification{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestVerifyPaymentValidSignature(t *testing.T) {
	store := newFakeOrderStore()
	g := New("rzp_test_key", "secret123", store, zap.NewNop())

	v := models.PaymentVerification{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_def",
		RazorpaySignature: Sign("secret123", "order_abc", "pay_def"),
		OrderNumber:       "ORD-20260901-CR1042",
	}
	require.NoError(t, g.VerifyPayment(context.Background(), v))
	assert.Equal(t, "paid", store.payments["ORD-20260901-CR1042"])
	assert.Equal(t, "pay_def", store.lastID)
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	store := newFakeOrderStore()
	g := New("rzp_test_key", "secret123", store, zap.NewNop())

	v := models.PaymentVerification{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_def",
		RazorpaySignature: "forged",
		OrderNumber:       "ORD-20260901-CR1042",
	}
	err := g.VerifyPayment(context.Background(), v)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, "failed", store.payments["ORD-20260901-CR1042"])
}

func TestSignIsDeterministic(t *testing.T) {
	a := Sign("secret", "order_1", "pay_1")
	b := Sign("secret", "order_1", "pay_1")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Sign("other", "order_1", "pay_1"))
	assert.Len(t, a, 64)
}
