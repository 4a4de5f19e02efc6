package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "admin", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("right"), "admin", "admin")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("wrong"), token)
	assert.Error(t, err)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		num := GenerateOrderNumber()
		assert.Regexp(t, pattern, num)
		assert.False(t, seen[num], "order numbers must not repeat")
		seen[num] = true
	}
}
