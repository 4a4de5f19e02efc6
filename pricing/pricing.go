// Package pricing computes cart totals, delivery charges and minimum-order
// gating. All amounts are whole rupees; paise conversion happens only at
// the payment-gateway boundary.
package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
)

// Fulfillment modes
const (
	ModeDelivery = "delivery"
	ModePickup   = "pickup"
)

// Minimum subtotal required before a delivery order may be placed.
const minOrderDelivery = 199

// Area is one delivery zone the restaurant serves, with its flat charge.
type Area struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Charge int    `json:"charge"`
}

// ServiceableAreas is matched in order; the first identifier contained in
// the customer's area text wins.
var ServiceableAreas = []Area{
	{Value: "srm", Label: "SRM University Area", Charge: 20},
	{Value: "potheri", Label: "Potheri", Charge: 20},
	{Value: "guduvanchery", Label: "Guduvanchery", Charge: 40},
}

// Subtotal sums price times quantity across all lines.
func Subtotal(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Price * line.Quantity
	}
	return total
}

// DeliveryCharge returns the flat charge for the given area text. Pickup is
// always free. An unmatched area returns 0; callers that need to reject
// unserviceable areas must check IsAreaServiceable separately.
func DeliveryCharge(area, mode string) int {
	if mode == ModePickup {
		return 0
	}
	normalized := strings.ToLower(strings.TrimSpace(area))
	for _, sa := range ServiceableAreas {
		if strings.Contains(normalized, sa.Value) {
			return sa.Charge
		}
	}
	return 0
}

// Total adds the delivery charge to the subtotal.
func Total(subtotal, deliveryCharge int) int {
	return subtotal + deliveryCharge
}

// MinimumOrderThreshold returns the minimum subtotal for the given mode.
func MinimumOrderThreshold(mode string) int {
	if mode == ModeDelivery {
		return minOrderDelivery
	}
	return 0
}

// IsMinimumOrderMet reports whether the subtotal clears the mode's threshold.
func IsMinimumOrderMet(subtotal int, mode string) bool {
	return subtotal >= MinimumOrderThreshold(mode)
}

// IsAreaServiceable reports whether the area text matches any known zone.
func IsAreaServiceable(area string) bool {
	normalized := strings.ToLower(strings.TrimSpace(area))
	for _, sa := range ServiceableAreas {
		if strings.Contains(normalized, sa.Value) {
			return true
		}
	}
	return false
}

var whitespace = regexp.MustCompile(`\s+`)

// LineID derives the cart identity key for an item. Additions of the same
// name and customization collapse onto one line.
func LineID(name, customization string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name+"-"+customization), "-")
}

// EstimatedDeliveryTime returns the quoted preparation-and-delivery window.
func EstimatedDeliveryTime() string {
	return "45-60 minutes"
}

// FormatPrice renders an amount for display, e.g. ₹199.
func FormatPrice(price int) string {
	return "₹" + strconv.Itoa(price)
}
