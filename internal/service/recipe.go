package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// RecipeService handles owner-scoped recipe operations. Every query is
// filtered by user id, so another user's recipe behaves as if it did not
// exist.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeUpdate carries a partial update. Nil fields are left untouched.
// Tags and Ingredients distinguish "absent" (nil) from "present but empty"
// (non-nil empty slice): the latter clears the association set.
type RecipeUpdate struct {
	Title       *string
	Description *string
	TimeMinutes *uint
	Price       *model.Decimal
	Link        *string
	Tags        *[]string
	Ingredients *[]string
}

// List returns the caller's recipes, newest first.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves one of the caller's recipes by id.
func (s *RecipeService) Get(ctx context.Context, userID uuid.UUID, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create stores a new recipe together with its resolved tag and ingredient
// sets. Resolution and the insert share one transaction.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, recipe *model.Recipe, tags, ingredients []string) (*model.Recipe, error) {
	recipe.UserID = userID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolvedTags, err := resolveTags(tx, userID, tags)
		if err != nil {
			return err
		}
		recipe.Tags = resolvedTags

		resolvedIngredients, err := resolveIngredients(tx, userID, ingredients)
		if err != nil {
			return err
		}
		recipe.Ingredients = resolvedIngredients

		return tx.Create(recipe).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, recipe.ID)
}

// Update applies a full or partial update. When a tag or ingredient list is
// present the association set is replaced with the resolved rows; an empty
// list detaches everything without deleting the rows themselves.
func (s *RecipeService) Update(ctx context.Context, userID uuid.UUID, id uint, upd RecipeUpdate) (*model.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.Where("user_id = ?", userID).First(&recipe, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if upd.Title != nil {
			updates["title"] = *upd.Title
		}
		if upd.Description != nil {
			updates["description"] = *upd.Description
		}
		if upd.TimeMinutes != nil {
			updates["time_minutes"] = *upd.TimeMinutes
		}
		if upd.Price != nil {
			updates["price"] = *upd.Price
		}
		if upd.Link != nil {
			updates["link"] = *upd.Link
		}
		if len(updates) > 0 {
			if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
				return err
			}
		}

		if upd.Tags != nil {
			resolved, err := resolveTags(tx, userID, *upd.Tags)
			if err != nil {
				return err
			}
			assoc := tx.Model(&recipe).Association("Tags")
			if len(resolved) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(resolved)
			}
			if err != nil {
				return err
			}
		}

		if upd.Ingredients != nil {
			resolved, err := resolveIngredients(tx, userID, *upd.Ingredients)
			if err != nil {
				return err
			}
			assoc := tx.Model(&recipe).Association("Ingredients")
			if len(resolved) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(resolved)
			}
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, id)
}

// Delete removes one of the caller's recipes. Tag and ingredient rows
// attached to it are left in place, they may be shared with other recipes.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&recipe, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// AttachImage records the stored image URL on the recipe.
func (s *RecipeService) AttachImage(ctx context.Context, userID uuid.UUID, id uint, imageURL string) (*model.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.Where("user_id = ?", userID).First(&recipe, id).Error; err != nil {
			return err
		}
		return tx.Model(&recipe).Update("image_url", imageURL).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// resolveTags maps names to tag rows owned by the user, creating the ones
// that do not exist yet. Lookup is by exact name.
func resolveTags(tx *gorm.DB, userID uuid.UUID, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.Tag{Name: name, UserID: userID}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// resolveIngredients is the ingredient counterpart of resolveTags.
func resolveIngredients(tx *gorm.DB, userID uuid.UUID, names []string) ([]model.Ingredient, error) {
	ingredients := make([]model.Ingredient, 0, len(names))
	for _, name := range names {
		var ingredient model.Ingredient
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ingredient = model.Ingredient{Name: name, UserID: userID}
			if err := tx.Create(&ingredient).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}
