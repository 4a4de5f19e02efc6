package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/orders"
)

// AdminHandler serves dashboard statistics.
type AdminHandler struct {
	DB   *sql.DB
	Repo *orders.Repository
}

// Dashboard returns order counts, revenue and menu size (admin only)
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard"})
		return
	}

	var menuCount int
	if err := h.DB.QueryRowContext(c.Request.Context(),
		`SELECT COUNT(*) FROM menu_items`).Scan(&menuCount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":     stats.TotalOrders,
		"pending_orders":   stats.PendingOrders,
		"delivered_orders": stats.DeliveredOrders,
		"total_revenue":    stats.TotalRevenue,
		"menu_items_count": menuCount,
	})
}
