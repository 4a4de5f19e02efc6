package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

const defaultBadge = "Today's Special"

// SpecialsHandler manages "today's special" promotions.
type SpecialsHandler struct {
	DB *sql.DB
}

// List returns specials, active ones only unless active_only=false.
func (h *SpecialsHandler) List(c *gin.Context) {
	query := `SELECT id, name, description, original_price, special_price, image, is_active, badge, created_at, updated_at
	          FROM specials`
	if c.DefaultQuery("active_only", "true") == "true" {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.QueryContext(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch specials"})
		return
	}
	defer rows.Close()

	specials := []models.Special{}
	for rows.Next() {
		special, err := scanSpecial(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process specials"})
			return
		}
		specials = append(specials, *special)
	}

	c.JSON(http.StatusOK, gin.H{"specials": specials})
}

// Get retrieves one special.
func (h *SpecialsHandler) Get(c *gin.Context) {
	row := h.DB.QueryRowContext(c.Request.Context(),
		`SELECT id, name, description, original_price, special_price, image, is_active, badge, created_at, updated_at
		 FROM specials WHERE id = ?`, c.Param("id"))
	special, err := scanSpecial(row)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "special not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"special": special})
}

// Create adds a new special (admin only)
func (h *SpecialsHandler) Create(c *gin.Context) {
	var input models.SpecialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.SpecialPrice >= input.OriginalPrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "special price must be below the original price"})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	badge := input.Badge
	if badge == "" {
		badge = defaultBadge
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := h.DB.ExecContext(c.Request.Context(),
		`INSERT INTO specials (id, name, description, original_price, special_price, image, is_active, badge, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Description, input.OriginalPrice, input.SpecialPrice,
		input.Image, isActive, badge, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create special"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "special created successfully",
		"id":      id,
	})
}

// Update applies a partial update to a special (admin only)
func (h *SpecialsHandler) Update(c *gin.Context) {
	var input models.SpecialUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := "updated_at = ?"
	args := []interface{}{time.Now().UTC()}
	if input.Name != nil {
		sets += ", name = ?"
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets += ", description = ?"
		args = append(args, *input.Description)
	}
	if input.OriginalPrice != nil {
		sets += ", original_price = ?"
		args = append(args, *input.OriginalPrice)
	}
	if input.SpecialPrice != nil {
		sets += ", special_price = ?"
		args = append(args, *input.SpecialPrice)
	}
	if input.Image != nil {
		sets += ", image = ?"
		args = append(args, *input.Image)
	}
	if input.IsActive != nil {
		sets += ", is_active = ?"
		args = append(args, *input.IsActive)
	}
	if input.Badge != nil {
		sets += ", badge = ?"
		args = append(args, *input.Badge)
	}
	args = append(args, c.Param("id"))

	result, err := h.DB.ExecContext(c.Request.Context(),
		"UPDATE specials SET "+sets+" WHERE id = ?", args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update special"})
		return
	}
	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "special not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "special updated successfully"})
}

// Delete removes a special (admin only)
func (h *SpecialsHandler) Delete(c *gin.Context) {
	result, err := h.DB.ExecContext(c.Request.Context(),
		`DELETE FROM specials WHERE id = ?`, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete special"})
		return
	}
	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "special not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "special deleted successfully"})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecial(row rowScanner) (*models.Special, error) {
	var s models.Special
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.OriginalPrice, &s.SpecialPrice,
		&s.Image, &s.IsActive, &s.Badge, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.DiscountPercent = models.DiscountPercent(s.OriginalPrice, s.SpecialPrice)
	return &s, nil
}
