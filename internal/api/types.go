package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// NamedRef is a nested tag or ingredient reference in a recipe payload.
type NamedRef struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeRequest is the POST /recipes payload.
type CreateRecipeRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	TimeMinutes *uint          `json:"time_minutes" binding:"required"`
	Price       *model.Decimal `json:"price" binding:"required"`
	Link        string         `json:"link"`
	Tags        []NamedRef     `json:"tags"`
	Ingredients []NamedRef     `json:"ingredients"`
}

// UpdateRecipeRequest covers both PUT and PATCH. Nil means "not sent";
// PUT additionally requires title, time_minutes and price to be present.
type UpdateRecipeRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	TimeMinutes *uint          `json:"time_minutes"`
	Price       *model.Decimal `json:"price"`
	Link        *string        `json:"link"`
	Tags        *[]NamedRef    `json:"tags"`
	Ingredients *[]NamedRef    `json:"ingredients"`
}

// UpdateNameRequest renames a tag or ingredient.
type UpdateNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeSummaryResponse is the list/creation shape: no description.
type RecipeSummaryResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes uint                 `json:"time_minutes"`
	Price       model.Decimal        `json:"price"`
	Link        string               `json:"link"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// RecipeDetailResponse adds the fields only the detail routes return.
type RecipeDetailResponse struct {
	RecipeSummaryResponse
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func toTagResponses(tags []model.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

func toIngredientResponses(ingredients []model.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, IngredientResponse{ID: i.ID, Name: i.Name})
	}
	return out
}

func toRecipeSummary(r *model.Recipe) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        toTagResponses(r.Tags),
		Ingredients: toIngredientResponses(r.Ingredients),
	}
}

func toRecipeDetail(r *model.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		RecipeSummaryResponse: toRecipeSummary(r),
		Description:           r.Description,
		ImageURL:              r.ImageURL,
	}
}

// currentUserID reads the authenticated caller set by AuthMiddleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}

// parseID parses the :id route parameter. Anything that is not a positive
// integer cannot name an existing row, so callers treat failure as 404.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
