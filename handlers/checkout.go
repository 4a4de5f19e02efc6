package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/cart"
	"github.com/Aswin-004/restaurant-ordering-platform/checkout"
	"github.com/Aswin-004/restaurant-ordering-platform/location"
	"github.com/Aswin-004/restaurant-ordering-platform/middleware"
	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

// CheckoutHandler binds the checkout flow to the session's cart and
// location state.
type CheckoutHandler struct {
	Flow     *checkout.Flow
	Cart     *cart.Store
	Location *location.Store
}

// SubmitInput is the checkout form payload.
type SubmitInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Landmark      string `json:"landmark"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// Submit runs one checkout attempt over the session's cart
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sid := middleware.SessionID(c)

	sel, ok := h.Location.Get(c.Request.Context(), sid)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"detail": "Please select delivery location first"})
		return
	}

	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.Flow.Submit(c.Request.Context(), checkout.Request{
		SessionID: sid,
		Form: checkout.FormData{
			Name:     input.Name,
			Phone:    input.Phone,
			Address:  input.Address,
			Landmark: input.Landmark,
			Notes:    input.Notes,
		},
		PaymentMethod: input.PaymentMethod,
		Mode:          sel.DeliveryType,
		Area:          sel.SelectedArea,
		Lines:         h.Cart.Lines(c.Request.Context(), sid),
	})

	c.JSON(http.StatusOK, result)
}

// ConfirmPayment completes a hosted-payment checkout after the provider
// callback
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	sid := middleware.SessionID(c)

	var input models.PaymentVerification
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Flow.ConfirmPayment(c.Request.Context(), sid, input))
}

// CancelPayment records the customer dismissing the hosted payment UI
func (h *CheckoutHandler) CancelPayment(c *gin.Context) {
	var input struct {
		OrderNumber string `json:"order_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Flow.CancelPayment(input.OrderNumber))
}
