package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds a customer-facing order number of the form
// ORD-20260901-3FA2B1.
func GenerateOrderNumber() string {
	timestamp := time.Now().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", timestamp, suffix)
}
