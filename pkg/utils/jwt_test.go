package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	// The secret is loaded from .env after the process starts, so the
	// functions must see a value set after package init.
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := CreateToken("provider-1", "provider")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "provider-1", claims.ProviderID)
	assert.Equal(t, "provider", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := CreateToken("provider-1", "provider")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
