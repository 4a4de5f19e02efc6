package models

// PaymentCartItem is one cart line sent to the payment-order endpoint.
// Per-line subtotal is recomputed server-side and never trusted from input.
type PaymentCartItem struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    int    `json:"price" binding:"min=0"`
}

// PaymentOrderRequest holds data for creating a hosted payment order
type PaymentOrderRequest struct {
	CustomerName string            `json:"customer_name" binding:"required,min=2,max=100"`
	Phone        string            `json:"phone" binding:"required,min=10,max=15"`
	Address      string            `json:"address" binding:"required"`
	Landmark     string            `json:"landmark"`
	CartItems    []PaymentCartItem `json:"cart_items" binding:"required"`
	Notes        string            `json:"notes"`
	OrderType    string            `json:"order_type" binding:"required,oneof=delivery pickup"`
	DeliveryArea string            `json:"delivery_area"`
}

// PaymentOrder is the provider handle returned to the client for opening
// the hosted payment UI
type PaymentOrder struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	OrderNumber     string `json:"order_number"`
	Amount          int    `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"`
}

// PaymentVerification holds the provider's success callback payload
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderNumber       string `json:"order_number" binding:"required"`
}
