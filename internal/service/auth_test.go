package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/model"
)

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Test User", "user@example.com", "testpassword123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// the stored hash is not the plaintext password
	var user model.User
	require.NoError(t, db.Where("email = ?", "user@example.com").First(&user).Error)
	assert.NotEqual(t, "testpassword123", user.PasswordHash)

	_, err = svc.Register("Other", "user@example.com", "anotherpassword")
	assert.ErrorIs(t, err, ErrEmailTaken)

	token, err = svc.Login("user@example.com", "testpassword123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("user@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("missing@example.com", "testpassword123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Test User", "user@example.com", "testpassword123")
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("email = ?", "user@example.com").First(&user).Error)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// a token signed with another secret is rejected
	other := NewAuthService(db, "other-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
