package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService("test-secret", 24*time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "member@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "member@example.com", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuerSvc, err := NewJWTService("secret-a", 24*time.Hour)
	require.NoError(t, err)
	verifierSvc, err := NewJWTService("secret-b", 24*time.Hour)
	require.NoError(t, err)

	token, err := issuerSvc.GenerateToken(uuid.New(), "member@example.com", "admin")
	require.NoError(t, err)

	_, err = verifierSvc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService("test-secret", 24*time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService("", 24*time.Hour)
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}
