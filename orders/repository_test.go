package orders_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/config"
	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/orders"
)

func newRepo(t *testing.T) *orders.Repository {
	t.Helper()
	db, err := config.InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return orders.NewRepository(db, zap.NewNop())
}

func deliveryOrder() models.OrderCreate {
	return models.OrderCreate{
		CustomerName: "Aswin Kumar",
		Phone:        "9876543210",
		Address:      "12 College Road, near main gate",
		OrderType:    "delivery",
		DeliveryArea: "Potheri",
		CartItems: []models.OrderItem{
			{ItemName: "Chicken Biryani", Quantity: 2, Price: 180},
		},
	}
}

func TestCreateRecomputesPricing(t *testing.T) {
	repo := newRepo(t)

	in := deliveryOrder()
	// Client-supplied subtotals are ignored.
	in.CartItems[0].Subtotal = 1

	order, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 360, order.Subtotal)
	assert.Equal(t, 20, order.DeliveryCharge)
	assert.Equal(t, 380, order.Total)
	assert.Equal(t, 360, order.CartItems[0].Subtotal)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "2x Chicken Biryani", order.Items)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`), order.OrderNumber)
}

func TestCreateRejections(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	empty := deliveryOrder()
	empty.CartItems = nil
	_, err := repo.Create(ctx, empty)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Order must contain at least one item", verr.Detail)

	badQty := deliveryOrder()
	badQty.CartItems[0].Quantity = 0
	_, err = repo.Create(ctx, badQty)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Item quantity must be at least 1", verr.Detail)

	farAway := deliveryOrder()
	farAway.DeliveryArea = "Chromepet"
	_, err = repo.Create(ctx, farAway)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Delivery not available in your area", verr.Detail)

	small := deliveryOrder()
	small.CartItems = []models.OrderItem{{ItemName: "Parotta", Quantity: 1, Price: 50}}
	_, err = repo.Create(ctx, small)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Minimum order amount is ₹199", verr.Detail)
}

func TestCreatePickupHasNoMinimumOrCharge(t *testing.T) {
	repo := newRepo(t)

	in := deliveryOrder()
	in.OrderType = "pickup"
	in.DeliveryArea = ""
	in.CartItems = []models.OrderItem{{ItemName: "Parotta", Quantity: 1, Price: 50}}

	order, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 50, order.Subtotal)
	assert.Equal(t, 0, order.DeliveryCharge)
	assert.Equal(t, 50, order.Total)
}

func TestGetByNumberRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, deliveryOrder())
	require.NoError(t, err)

	got, err := repo.GetByNumber(ctx, created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Total, got.Total)
	require.Len(t, got.CartItems, 1)
	assert.Equal(t, "Chicken Biryani", got.CartItems[0].ItemName)

	_, err = repo.GetByNumber(ctx, "ORD-20260101-FFFFFF")
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, deliveryOrder())
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	var verr *models.ValidationError
	_, err = repo.UpdateStatus(ctx, created.ID, "teleported")
	assert.ErrorAs(t, err, &verr)

	_, err = repo.UpdateStatus(ctx, "missing-id", models.StatusConfirmed)
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestListPaginationAndFilter(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var last *models.Order
	for i := 0; i < 3; i++ {
		order, err := repo.Create(ctx, deliveryOrder())
		require.NoError(t, err)
		last = order
	}
	_, err := repo.UpdateStatus(ctx, last.ID, models.StatusDelivered)
	require.NoError(t, err)

	list, total, err := repo.List(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, list, 2)

	delivered, total, err := repo.List(ctx, models.StatusDelivered, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, delivered, 1)
	assert.Equal(t, last.ID, delivered[0].ID)
}

func TestPaymentUpdates(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, deliveryOrder())
	require.NoError(t, err)

	require.NoError(t, repo.AttachProviderOrder(ctx, created.OrderNumber, "order_xyz"))
	require.NoError(t, repo.UpdatePayment(ctx, created.OrderNumber, "paid", "pay_abc"))

	got, err := repo.GetByNumber(ctx, created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "order_xyz", got.RazorpayOrderID)
	assert.Equal(t, "pay_abc", got.RazorpayPaymentID)
	assert.Equal(t, "paid", got.PaymentStatus)

	assert.ErrorIs(t, repo.AttachProviderOrder(ctx, "ORD-NOPE", "x"), orders.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePayment(ctx, "ORD-NOPE", "paid", "x"), orders.ErrNotFound)
}

func TestStats(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, deliveryOrder())
	require.NoError(t, err)
	_, err = repo.Create(ctx, deliveryOrder())
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, first.ID, models.StatusDelivered)
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.DeliveredOrders)
	assert.Equal(t, 380, stats.TotalRevenue)
}
