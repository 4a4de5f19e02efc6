// Package orders persists orders in SQLite and enforces the server-side
// pricing rules: totals are always recomputed here, never trusted from the
// client.
package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
	"github.com/Aswin-004/restaurant-ordering-platform/utils"
)

var ErrNotFound = errors.New("order not found")

const orderColumns = `id, order_number, customer_name, phone, address, landmark, items, cart_items,
	notes, order_type, delivery_area, subtotal, delivery_charge, total,
	payment_method, payment_status, razorpay_order_id, razorpay_payment_id,
	status, estimated_time, created_at, updated_at`

// Repository owns all order reads and writes.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(db *sql.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Create validates and stores a new order. The subtotal, delivery charge
// and total are recomputed from the structured cart lines; delivery orders
// to unserviceable areas and orders under the minimum are rejected with a
// customer-facing detail.
func (r *Repository) Create(ctx context.Context, in models.OrderCreate) (*models.Order, error) {
	if len(in.CartItems) == 0 {
		return nil, models.NewValidationError("Order must contain at least one item")
	}

	subtotal := 0
	for i := range in.CartItems {
		if in.CartItems[i].Quantity < 1 {
			return nil, models.NewValidationError("Item quantity must be at least 1")
		}
		in.CartItems[i].Subtotal = in.CartItems[i].Price * in.CartItems[i].Quantity
		subtotal += in.CartItems[i].Subtotal
	}

	if in.OrderType == pricing.ModeDelivery && !pricing.IsAreaServiceable(in.DeliveryArea) {
		return nil, models.NewValidationError("Delivery not available in your area")
	}
	if !pricing.IsMinimumOrderMet(subtotal, in.OrderType) {
		return nil, models.NewValidationError(
			fmt.Sprintf("Minimum order amount is %s", pricing.FormatPrice(pricing.MinimumOrderThreshold(in.OrderType))))
	}

	deliveryCharge := pricing.DeliveryCharge(in.DeliveryArea, in.OrderType)

	items := in.Items
	if items == "" {
		parts := make([]string, 0, len(in.CartItems))
		for _, item := range in.CartItems {
			parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.ItemName))
		}
		items = strings.Join(parts, ", ")
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:             uuid.NewString(),
		OrderNumber:    utils.GenerateOrderNumber(),
		CustomerName:   in.CustomerName,
		Phone:          in.Phone,
		Address:        in.Address,
		Landmark:       in.Landmark,
		Items:          items,
		CartItems:      in.CartItems,
		Notes:          in.Notes,
		OrderType:      in.OrderType,
		DeliveryArea:   in.DeliveryArea,
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		Total:          pricing.Total(subtotal, deliveryCharge),
		PaymentMethod:  paymentMethod,
		PaymentStatus:  "pending",
		Status:         models.StatusPending,
		EstimatedTime:  pricing.EstimatedDeliveryTime(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	cartJSON, err := json.Marshal(order.CartItems)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OrderNumber, order.CustomerName, order.Phone, order.Address,
		order.Landmark, order.Items, string(cartJSON), order.Notes, order.OrderType,
		order.DeliveryArea, order.Subtotal, order.DeliveryCharge, order.Total,
		order.PaymentMethod, order.PaymentStatus, order.RazorpayOrderID,
		order.RazorpayPaymentID, order.Status, order.EstimatedTime,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	r.logger.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("order_type", order.OrderType),
		zap.String("payment_method", order.PaymentMethod),
		zap.Int("total", order.Total))
	return order, nil
}

// GetByNumber looks an order up by its customer-facing number.
func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = ?`, orderNumber)
	return scanOrder(row)
}

// GetByID looks an order up by its internal ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	return scanOrder(row)
}

// List returns orders newest first with an optional status filter, plus the
// total count for pagination.
func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	countQuery := `SELECT COUNT(*) FROM orders`

	var args []interface{}
	if status != "" {
		query += " WHERE status = ?"
		countQuery += " WHERE status = ?"
		args = append(args, status)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

// UpdateStatus transitions an order to a new status.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidStatuses[status] {
		return nil, models.NewValidationError("invalid status")
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// AttachProviderOrder records the payment provider's order handle.
func (r *Repository) AttachProviderOrder(ctx context.Context, orderNumber, providerOrderID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET razorpay_order_id = ?, updated_at = ? WHERE order_number = ?`,
		providerOrderID, time.Now().UTC(), orderNumber)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePayment records the outcome of a payment attempt.
func (r *Repository) UpdatePayment(ctx context.Context, orderNumber, paymentStatus, paymentID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET payment_status = ?, razorpay_payment_id = ?, updated_at = ? WHERE order_number = ?`,
		paymentStatus, paymentID, time.Now().UTC(), orderNumber)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardStats aggregates the counts shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	TotalRevenue    int `json:"total_revenue"`
}

// Stats computes order counts and revenue over delivered orders.
func (r *Repository) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0)
		FROM orders`,
		models.StatusPending, models.StatusDelivered, models.StatusDelivered).Scan(
		&stats.TotalOrders, &stats.PendingOrders, &stats.DeliveredOrders, &stats.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	var cartJSON string
	var rzpOrderID, rzpPaymentID sql.NullString

	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.CustomerName, &order.Phone,
		&order.Address, &order.Landmark, &order.Items, &cartJSON, &order.Notes,
		&order.OrderType, &order.DeliveryArea, &order.Subtotal,
		&order.DeliveryCharge, &order.Total, &order.PaymentMethod,
		&order.PaymentStatus, &rzpOrderID, &rzpPaymentID, &order.Status,
		&order.EstimatedTime, &order.CreatedAt, &order.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	order.RazorpayOrderID = rzpOrderID.String
	order.RazorpayPaymentID = rzpPaymentID.String
	if err := json.Unmarshal([]byte(cartJSON), &order.CartItems); err != nil {
		return nil, err
	}
	return &order, nil
}
