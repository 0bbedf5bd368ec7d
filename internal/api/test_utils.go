package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/model"
	"github.com/recipebox/backend/internal/service"
)

// fakeImageStorage records uploads in memory.
type fakeImageStorage struct {
	uploads map[string][]byte
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{uploads: make(map[string][]byte)}
}

func (f *fakeImageStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.uploads[key] = data
	return "https://images.test/" + key, nil
}

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	auth    *service.AuthService
	storage *fakeImageStorage
}

// setupTestEnv builds the full route tree over an in-memory database.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	authService := service.NewAuthService(db, "test-secret")
	storage := newFakeImageStorage()

	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db), storage, nil)
	tagHandler := NewTagHandler(service.NewTagService(db))
	ingredientHandler := NewIngredientHandler(service.NewIngredientService(db))

	router := gin.New()
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		recipeHandler.RegisterRoutes(protected)
		tagHandler.RegisterRoutes(protected)
		ingredientHandler.RegisterRoutes(protected)
	}

	return &testEnv{
		router:  router,
		db:      db,
		auth:    authService,
		storage: storage,
	}
}

// createTestUser stores a user and returns its id and a valid token.
func createTestUser(t *testing.T, env *testEnv, email string) (uuid.UUID, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := model.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hashed),
	}
	require.NoError(t, env.db.Create(&user).Error)

	token, err := env.auth.GenerateToken(user.ID)
	require.NoError(t, err)

	return user.ID, token
}

// performRequest sends a JSON request through the router. An empty token
// leaves the Authorization header unset.
func performRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performUpload sends a multipart request with a single "image" field.
func performUpload(t *testing.T, router *gin.Engine, path, token string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "upload.bin")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// pngPayload is a minimal buffer that content sniffing reports as image/png.
func pngPayload() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 32)...)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func recipePayload(overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"title":        "Sample Recipe Title",
		"description":  "Sample Recipe Description",
		"time_minutes": 25,
		"price":        "10.20",
		"link":         "http://example.com/recipe.pdf",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func recipeURL(id interface{}) string {
	return fmt.Sprintf("/api/v1/recipes/%v", id)
}
