package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/cart"
	"github.com/Aswin-004/restaurant-ordering-platform/location"
	"github.com/Aswin-004/restaurant-ordering-platform/middleware"
	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
)

// LocationHandler serves the session's fulfillment selection.
type LocationHandler struct {
	Location *location.Store
	Cart     *cart.Store
}

// Get returns the current selection, if any
func (h *LocationHandler) Get(c *gin.Context) {
	sid := middleware.SessionID(c)
	sel, ok := h.Location.Get(c.Request.Context(), sid)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"is_set": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_set":          true,
		"delivery_type":   sel.DeliveryType,
		"selected_area":   sel.SelectedArea,
		"delivery_charge": pricing.DeliveryCharge(sel.SelectedArea, sel.DeliveryType),
	})
}

// Areas lists the serviceable delivery areas with their charges
func (h *LocationHandler) Areas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"areas": pricing.ServiceableAreas})
}

// Set records the fulfillment choice for the session
func (h *LocationHandler) Set(c *gin.Context) {
	sid := middleware.SessionID(c)

	var input struct {
		DeliveryType string `json:"delivery_type" binding:"required"`
		SelectedArea string `json:"selected_area"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Location.Set(c.Request.Context(), sid, input.DeliveryType, input.SelectedArea)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrNotServiceable):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Delivery not available in your area"})
		case errors.Is(err, location.ErrInvalidMode):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Delivery type must be delivery or pickup"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_set":          true,
		"delivery_type":   input.DeliveryType,
		"selected_area":   input.SelectedArea,
		"delivery_charge": pricing.DeliveryCharge(input.SelectedArea, input.DeliveryType),
	})
}

// Clear removes the selection and empties the cart so prices from the old
// area never carry over
func (h *LocationHandler) Clear(c *gin.Context) {
	sid := middleware.SessionID(c)
	h.Location.Clear(c.Request.Context(), sid)
	h.Cart.Clear(c.Request.Context(), sid)
	c.JSON(http.StatusOK, gin.H{"is_set": false})
}
