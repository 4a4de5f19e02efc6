package models

import (
	"time"
)

// MenuItem represents one orderable dish on the menu
type MenuItem struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItemInput holds data for creating a menu item
type MenuItemInput struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required,min=1"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Available   *bool  `json:"available"`
}

// MenuItemUpdate holds a partial update; nil fields are left unchanged
type MenuItemUpdate struct {
	Price       *int    `json:"price"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Available   *bool   `json:"available"`
}
