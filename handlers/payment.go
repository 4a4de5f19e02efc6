package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/payment"
)

// PaymentHandler exposes the hosted-payment endpoints consumed by the
// checkout page.
type PaymentHandler struct {
	Gateway *payment.Gateway
}

// CreateRazorpayOrder validates the order server-side and opens a provider
// order for the hosted checkout widget.
func (h *PaymentHandler) CreateRazorpayOrder(c *gin.Context) {
	var input models.PaymentOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Gateway.CreateOrder(c.Request.Context(), input)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, payment.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Payment gateway not configured. Please contact restaurant."})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Detail})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// VerifyPayment checks the provider's signature callback and marks the
// order paid.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input models.PaymentVerification
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Gateway.VerifyPayment(c.Request.Context(), input); err != nil {
		switch {
		case errors.Is(err, payment.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Payment gateway not configured"})
		case errors.Is(err, payment.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid payment signature"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Payment verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment verified successfully"})
}
