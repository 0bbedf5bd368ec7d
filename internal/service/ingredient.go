package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// IngredientService mirrors TagService for ingredients.
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List returns the caller's ingredients ordered by descending name.
func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get retrieves one of the caller's ingredients by id.
func (s *IngredientService) Get(ctx context.Context, userID uuid.UUID, id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update renames one of the caller's ingredients.
func (s *IngredientService) Update(ctx context.Context, userID uuid.UUID, id uint, name string) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&ingredient).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes an ingredient and its recipe associations.
func (s *IngredientService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient model.Ingredient
		if err := tx.Where("user_id = ?", userID).First(&ingredient, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
}
