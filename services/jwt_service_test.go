package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWTRoundTrip(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret-key-for-unit-tests"))

	token, expiresAt, err := GenerateUserJWT("user-123", "ana@example.com", "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := VerifyUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestVerifyUserJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret-key-for-unit-tests"))

	_, err := VerifyUserJWT("not-a-token")
	assert.Error(t, err)

	_, err = VerifyUserJWT("")
	assert.Error(t, err)
}

func TestVerifyUserJWTRejectsForeignSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-one-which-is-long-enough"))
	token, _, err := GenerateUserJWT("user-123", "ana@example.com", "Ana")
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-two-which-is-long-enough"))
	_, err = VerifyUserJWT(token)
	assert.Error(t, err)
}
