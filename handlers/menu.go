package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

// MenuHandler serves the browsable menu and its admin management surface.
type MenuHandler struct {
	DB *sql.DB
}

// List retrieves menu items, optionally filtered by category. Unavailable
// items are hidden unless available_only=false.
func (h *MenuHandler) List(c *gin.Context) {
	query := `SELECT id, category, name, price, description, image, available, created_at, updated_at FROM menu_items`

	var conditions []string
	var args []interface{}
	if category := c.Query("category"); category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}
	if c.DefaultQuery("available_only", "true") == "true" {
		conditions = append(conditions, "available = 1")
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY category, name"

	rows, err := h.DB.QueryContext(c.Request.Context(), query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Name,
			&item.Price,
			&item.Description,
			&item.Image,
			&item.Available,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process menu items"})
			return
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"menu": items})
}

// Categories returns the distinct menu categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(),
		`SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process categories"})
			return
		}
		categories = append(categories, category)
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get retrieves a single menu item.
func (h *MenuHandler) Get(c *gin.Context) {
	var item models.MenuItem
	err := h.DB.QueryRowContext(c.Request.Context(),
		`SELECT id, category, name, price, description, image, available, created_at, updated_at
		 FROM menu_items WHERE id = ?`, c.Param("id")).Scan(
		&item.ID, &item.Category, &item.Name, &item.Price, &item.Description,
		&item.Image, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Create adds a new menu item (admin only)
func (h *MenuHandler) Create(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := h.DB.ExecContext(c.Request.Context(),
		`INSERT INTO menu_items (id, category, name, price, description, image, available, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Category, input.Name, input.Price, input.Description, input.Image, available, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "menu item created successfully",
		"id":      id,
	})
}

// Update applies a partial update to a menu item (admin only)
func (h *MenuHandler) Update(c *gin.Context) {
	var input models.MenuItemUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if input.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *input.Price)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, *input.Image)
	}
	if input.Available != nil {
		sets = append(sets, "available = ?")
		args = append(args, *input.Available)
	}

	query := "UPDATE menu_items SET " + sets[0]
	for _, set := range sets[1:] {
		query += ", " + set
	}
	query += " WHERE id = ?"
	args = append(args, c.Param("id"))

	result, err := h.DB.ExecContext(c.Request.Context(), query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}
	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item updated successfully"})
}

// Delete removes a menu item (admin only)
func (h *MenuHandler) Delete(c *gin.Context) {
	result, err := h.DB.ExecContext(c.Request.Context(),
		`DELETE FROM menu_items WHERE id = ?`, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}
	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted successfully"})
}
