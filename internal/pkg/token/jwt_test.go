package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := "test-secret"

	signed, err := Generate(42, true, secret)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Parse(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(7, false, "right-secret")
	require.NoError(t, err)

	_, err = Parse(signed, "wrong-secret")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	assert.Error(t, err)
}
