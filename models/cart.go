package models

// CartLine represents one distinct item in a session cart. Two additions
// that resolve to the same ID merge into a single line.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// CartLineInput holds data for adding an item to the cart
type CartLineInput struct {
	Name          string `json:"name" binding:"required"`
	Price         int    `json:"price" binding:"min=0"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Customization string `json:"customization"`
}

// CartSummary provides a summary of the cart with totals
type CartSummary struct {
	Items     []CartLine `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  int        `json:"subtotal"`
}
