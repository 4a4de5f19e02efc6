package models

// ValidationError carries a human-readable rejection detail that is safe to
// surface to the customer, mirroring the API's {"detail": ...} shape.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError builds a surfaceable rejection.
func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}
