package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"name":     "Test User",
		"email":    "new@example.com",
		"password": "testpassword123",
	}
	w := performRequest(t, env.router, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decodeJSON(t, w)["token"])

	// duplicate email
	w = performRequest(t, env.router, http.MethodPost, "/api/v1/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := setupTestEnv(t)

	// short password
	w := performRequest(t, env.router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    "new@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email
	w = performRequest(t, env.router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    "not-an-email",
		"password": "testpassword123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	createTestUser(t, env, "user@example.com")

	w := performRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "testpassword123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decodeJSON(t, w)["token"].(string)
	require.NotEmpty(t, token)

	// the issued token is accepted by protected routes
	w = performRequest(t, env.router, http.MethodGet, "/api/v1/recipes", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	createTestUser(t, env, "user@example.com")

	w := performRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown email gets the same answer
	w = performRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "testpassword123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
