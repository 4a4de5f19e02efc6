package models

import (
	"time"
)

// Special represents a "today's special" promotion
type Special struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	OriginalPrice   int       `json:"original_price"`
	SpecialPrice    int       `json:"special_price"`
	DiscountPercent int       `json:"discount_percent"`
	Image           string    `json:"image,omitempty"`
	IsActive        bool      `json:"is_active"`
	Badge           string    `json:"badge"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SpecialInput holds data for creating a special
type SpecialInput struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Description   string `json:"description" binding:"required,min=5,max=300"`
	OriginalPrice int    `json:"original_price" binding:"required,min=1"`
	SpecialPrice  int    `json:"special_price" binding:"required,min=1"`
	Image         string `json:"image"`
	IsActive      *bool  `json:"is_active"`
	Badge         string `json:"badge"`
}

// SpecialUpdate holds a partial update; nil fields are left unchanged
type SpecialUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	OriginalPrice *int    `json:"original_price"`
	SpecialPrice  *int    `json:"special_price"`
	Image         *string `json:"image"`
	IsActive      *bool   `json:"is_active"`
	Badge         *string `json:"badge"`
}

// DiscountPercent derives the rounded percentage discount of a special.
func DiscountPercent(originalPrice, specialPrice int) int {
	if originalPrice <= 0 || specialPrice >= originalPrice {
		return 0
	}
	return int(float64(originalPrice-specialPrice)/float64(originalPrice)*100 + 0.5)
}
