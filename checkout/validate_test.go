package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
)

func TestValidateName(t *testing.T) {
	assert.NotEmpty(t, ValidateName(""))
	assert.NotEmpty(t, ValidateName("A"))
	assert.NotEmpty(t, ValidateName("  A  "))
	assert.Empty(t, ValidateName("Al"))
	assert.Empty(t, ValidateName("Aswin Kumar"))

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.NotEmpty(t, ValidateName(string(long)))
}

func TestValidatePhone(t *testing.T) {
	assert.Equal(t, "Phone number is required", ValidatePhone(""))
	assert.Empty(t, ValidatePhone("9876543210"))
	assert.Empty(t, ValidatePhone("98765 43210"), "embedded whitespace is ignored")
	assert.NotEmpty(t, ValidatePhone("1234567890"), "leading digit must be 6-9")
	assert.NotEmpty(t, ValidatePhone("987654321"), "too short")
	assert.NotEmpty(t, ValidatePhone("98765432101"), "too long")
	assert.NotEmpty(t, ValidatePhone("98765abcde"))
}

func TestValidateAddress(t *testing.T) {
	assert.NotEmpty(t, ValidateAddress(""))
	assert.NotEmpty(t, ValidateAddress("123456789"), "9 chars is under the minimum")
	assert.Empty(t, ValidateAddress("12 Main Street, Potheri"))

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	assert.NotEmpty(t, ValidateAddress(string(long)))
}

func TestValidateArea(t *testing.T) {
	assert.NotEmpty(t, ValidateArea(""))
	assert.NotEmpty(t, ValidateArea(" s "))
	assert.Empty(t, ValidateArea("Potheri"))
}

func TestValidateFormAddressOnlyForDelivery(t *testing.T) {
	form := FormData{Name: "Aswin", Phone: "9876543210", Address: "short"}

	errs := ValidateForm(form, pricing.ModeDelivery)
	assert.Contains(t, errs, "address")

	errs = ValidateForm(form, pricing.ModePickup)
	assert.NotContains(t, errs, "address")
	assert.Empty(t, errs)
}

func TestValidateFormAggregatesAllErrors(t *testing.T) {
	errs := ValidateForm(FormData{Name: "A", Phone: "123"}, pricing.ModeDelivery)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "address")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "scriptalert(1)/script", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "", SanitizeInput("   "))
}

func TestSanitizedForm(t *testing.T) {
	form := FormData{Name: " <b>Aswin</b> ", Phone: " 9876543210 ", Notes: "ring <twice>"}
	clean := form.Sanitized()
	assert.Equal(t, "bAswin/b", clean.Name)
	assert.Equal(t, "9876543210", clean.Phone)
	assert.Equal(t, "ring twice", clean.Notes)
}
