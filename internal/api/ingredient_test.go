package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/model"
)

func TestListIngredients(t *testing.T) {
	env := setupTestEnv(t)
	userID, token := createTestUser(t, env, "a@example.com")
	otherID, _ := createTestUser(t, env, "b@example.com")

	for _, name := range []string{"Apple", "Kale"} {
		require.NoError(t, env.db.Create(&model.Ingredient{Name: name, UserID: userID}).Error)
	}
	require.NoError(t, env.db.Create(&model.Ingredient{Name: "Salt", UserID: otherID}).Error)

	w := performRequest(t, env.router, http.MethodGet, "/api/v1/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	ingredients := body["ingredients"].([]interface{})
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Kale", ingredients[0].(map[string]interface{})["name"])
	assert.Equal(t, "Apple", ingredients[1].(map[string]interface{})["name"])
}

func TestUpdateIngredient(t *testing.T) {
	env := setupTestEnv(t)
	userID, token := createTestUser(t, env, "a@example.com")
	_, tokenB := createTestUser(t, env, "b@example.com")

	ingredient := model.Ingredient{Name: "Cilantro", UserID: userID}
	require.NoError(t, env.db.Create(&ingredient).Error)

	w := performRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), tokenB,
		map[string]string{"name": "Coriander"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, env.router, http.MethodPatch, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), token,
		map[string]string{"name": "Coriander"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Coriander", decodeJSON(t, w)["name"])
}

func TestDeleteIngredient(t *testing.T) {
	env := setupTestEnv(t)
	userID, token := createTestUser(t, env, "a@example.com")

	ingredient := model.Ingredient{Name: "Lettuce", UserID: userID}
	require.NoError(t, env.db.Create(&ingredient).Error)

	w := performRequest(t, env.router, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	w = performRequest(t, env.router, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIngredientsRequireAuthentication(t *testing.T) {
	env := setupTestEnv(t)

	w := performRequest(t, env.router, http.MethodGet, "/api/v1/ingredients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
