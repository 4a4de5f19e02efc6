package checkout

import (
	"regexp"
	"strings"

	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
)

var (
	phonePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	anyWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizeInput trims the value and strips angle brackets so raw form text
// cannot smuggle markup into downstream display contexts.
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	return strings.ReplaceAll(s, ">", "")
}

// ValidateName requires a trimmed length between 2 and 50.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return "Please enter a valid name (minimum 2 characters)"
	}
	if len(trimmed) > 50 {
		return "Name is too long (maximum 50 characters)"
	}
	return ""
}

// ValidatePhone requires a 10-digit Indian mobile number starting 6-9,
// ignoring embedded whitespace.
func ValidatePhone(phone string) string {
	if phone == "" {
		return "Phone number is required"
	}
	if !phonePattern.MatchString(anyWhitespace.ReplaceAllString(phone, "")) {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

// ValidateAddress requires a trimmed length between 10 and 200. Only
// called for delivery orders.
func ValidateAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if len(trimmed) < 10 {
		return "Please enter a complete address (minimum 10 characters)"
	}
	if len(trimmed) > 200 {
		return "Address is too long (maximum 200 characters)"
	}
	return ""
}

// ValidateArea requires at least 2 characters of area text.
func ValidateArea(area string) string {
	if len(strings.TrimSpace(area)) < 2 {
		return "Please select or enter your area"
	}
	return ""
}

// FormData carries the sanitized checkout form fields.
type FormData struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	Notes    string `json:"notes"`
}

// Sanitized returns a copy with every field passed through SanitizeInput.
func (f FormData) Sanitized() FormData {
	return FormData{
		Name:     SanitizeInput(f.Name),
		Phone:    SanitizeInput(f.Phone),
		Address:  SanitizeInput(f.Address),
		Landmark: SanitizeInput(f.Landmark),
		Notes:    SanitizeInput(f.Notes),
	}
}

// ValidateForm runs every field validator and aggregates failures keyed by
// field name. The form is valid when the map is empty. The address is only
// required for delivery orders.
func ValidateForm(form FormData, mode string) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateName(form.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidatePhone(form.Phone); msg != "" {
		errs["phone"] = msg
	}
	if mode == pricing.ModeDelivery {
		if msg := ValidateAddress(form.Address); msg != "" {
			errs["address"] = msg
		}
	}
	return errs
}
