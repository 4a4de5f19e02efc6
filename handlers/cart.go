package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/cart"
	"github.com/Aswin-004/restaurant-ordering-platform/location"
	"github.com/Aswin-004/restaurant-ordering-platform/middleware"
	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

// CartHandler serves the session cart. Adding requires a completed
// location selection so every item is priced against a known area.
type CartHandler struct {
	Cart     *cart.Store
	Location *location.Store
}

// Get returns the cart summary for the session
func (h *CartHandler) Get(c *gin.Context) {
	sid := middleware.SessionID(c)
	c.JSON(http.StatusOK, h.Cart.Summary(c.Request.Context(), sid))
}

// AddItem merges an item into the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	sid := middleware.SessionID(c)

	if !h.Location.IsSet(c.Request.Context(), sid) {
		c.JSON(http.StatusConflict, gin.H{"detail": "Please select delivery location first"})
		return
	}

	var input models.CartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := h.Cart.AddItem(c.Request.Context(), sid, input)
	c.JSON(http.StatusOK, cart.Summarize(lines))
}

// UpdateItem sets a line's quantity; zero removes the line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sid := middleware.SessionID(c)

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := h.Cart.UpdateQuantity(c.Request.Context(), sid, c.Param("itemId"), input.Quantity)
	c.JSON(http.StatusOK, cart.Summarize(lines))
}

// RemoveItem deletes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid := middleware.SessionID(c)
	lines := h.Cart.RemoveItem(c.Request.Context(), sid, c.Param("itemId"))
	c.JSON(http.StatusOK, cart.Summarize(lines))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	sid := middleware.SessionID(c)
	h.Cart.Clear(c.Request.Context(), sid)
	c.JSON(http.StatusOK, cart.Summarize(nil))
}
