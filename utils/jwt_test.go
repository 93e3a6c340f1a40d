package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", "ARTIST", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
	assert.Equal(t, "ARTIST", role)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-42", "CUSTOMER", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-42", "CUSTOMER", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-one")
	b := HashToken("token-one")
	c := HashToken("token-two")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
