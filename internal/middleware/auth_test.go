package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func runAuth(t *testing.T, validator TokenValidator, authorization string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	var captured *gin.Context

	router := gin.New()
	router.GET("/", AuthMiddleware(validator), func(c *gin.Context) {
		captured = c.Copy()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := &stubValidator{claims: &types.TokenClaims{UserID: userID}}

	w, c := runAuth(t, valid, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	got, exists := c.Get("user_id")
	require.True(t, exists)
	assert.Equal(t, userID, got)

	w, _ = runAuth(t, valid, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = runAuth(t, valid, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bad := &stubValidator{err: errors.New("expired")}
	w, _ = runAuth(t, bad, "Bearer stale-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
