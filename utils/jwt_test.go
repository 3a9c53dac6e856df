package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := []byte("test-secret")
	id := uuid.New()

	token, err := GenerateJWT(secret, id, "user@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims["userId"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("a"), uuid.New(), "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT([]byte("b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT(secret, uuid.New(), "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_RejectsNoneAlg(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x@example.com"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT([]byte("test-secret"), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
