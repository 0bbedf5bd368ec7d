package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/api"
	"github.com/recipebox/backend/internal/router"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/testhelpers"
)

// TestRecipeLifecycle drives the full stack against a real PostgreSQL
// instance: register, create with nested tags, list, partial update,
// clear associations, delete.
func TestRecipeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupTestDatabase(t)

	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	authService := service.NewAuthService(db, "integration-secret")
	engine := router.Setup(
		log,
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(service.NewRecipeService(db), nil, nil),
		api.NewTagHandler(service.NewTagService(db)),
		api.NewIngredientHandler(service.NewIngredientService(db)),
		authService,
	)

	do := func(method, path, token string, body interface{}) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(payload)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
		return out
	}

	// register
	w := do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Integration User",
		"email":    "integration@example.com",
		"password": "testpassword123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := decode(w)["token"].(string)
	require.NotEmpty(t, token)

	// create a recipe with nested tags and ingredients
	w = do(http.MethodPost, "/api/v1/recipes", token, map[string]interface{}{
		"title":        "Green Curry",
		"description":  "Fragrant and quick",
		"time_minutes": 30,
		"price":        "12.50",
		"tags":         []map[string]string{{"name": "Thai"}, {"name": "Dinner"}},
		"ingredients":  []map[string]string{{"name": "Prawns"}, {"name": "Coconut Milk"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(w)
	assert.Equal(t, "12.50", created["price"])
	assert.Len(t, created["tags"], 2)
	recipeID := int(created["id"].(float64))

	// the list shows it without the description
	w = do(http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decode(w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	_, hasDescription := recipes[0].(map[string]interface{})["description"]
	assert.False(t, hasDescription)

	// partial update keeps everything not mentioned
	w = do(http.MethodPatch, recipePath(recipeID), token, map[string]interface{}{
		"title": "Thai Green Curry",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(w)
	assert.Equal(t, "Thai Green Curry", updated["title"])
	assert.Equal(t, "12.50", updated["price"])
	assert.Len(t, updated["tags"], 2)

	// an empty tag list detaches without deleting the tag rows
	w = do(http.MethodPatch, recipePath(recipeID), token, map[string]interface{}{
		"tags": []map[string]string{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode(w)["tags"])

	w = do(http.MethodGet, "/api/v1/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(w)["tags"], 2)

	// delete and verify it is gone
	w = do(http.MethodDelete, recipePath(recipeID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(http.MethodGet, recipePath(recipeID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func recipePath(id int) string {
	return "/api/v1/recipes/" + strconv.Itoa(id)
}
