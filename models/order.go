package models

import (
	"time"
)

// Order statuses follow the kitchen workflow from pending through delivery.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// ValidStatuses is the set of statuses an admin may assign to an order.
var ValidStatuses = map[string]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusReady:          true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

// OrderItem is one structured line of an order
type OrderItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Subtotal int    `json:"subtotal"`
}

// Order represents a placed order
type Order struct {
	ID                string      `json:"id"`
	OrderNumber       string      `json:"order_number"`
	CustomerName      string      `json:"customer_name"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address"`
	Landmark          string      `json:"landmark,omitempty"`
	Items             string      `json:"items"`
	CartItems         []OrderItem `json:"cart_items"`
	Notes             string      `json:"notes,omitempty"`
	OrderType         string      `json:"order_type"`
	DeliveryArea      string      `json:"delivery_area,omitempty"`
	Subtotal          int         `json:"subtotal"`
	DeliveryCharge    int         `json:"delivery_charge"`
	Total             int         `json:"total"`
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	RazorpayOrderID   string      `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string      `json:"razorpay_payment_id,omitempty"`
	Status            string      `json:"status"`
	EstimatedTime     string      `json:"estimated_time"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderCreate holds data for creating a new order
type OrderCreate struct {
	CustomerName  string      `json:"customer_name" binding:"required,min=2,max=100"`
	Phone         string      `json:"phone" binding:"required,min=10,max=15"`
	Address       string      `json:"address" binding:"required,min=5,max=500"`
	Landmark      string      `json:"landmark"`
	Items         string      `json:"items"`
	CartItems     []OrderItem `json:"cart_items" binding:"required"`
	Notes         string      `json:"notes"`
	OrderType     string      `json:"order_type" binding:"required,oneof=delivery pickup"`
	DeliveryArea  string      `json:"delivery_area"`
	PaymentMethod string      `json:"payment_method"`
}

// OrderStatusUpdate holds a status transition request
type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
