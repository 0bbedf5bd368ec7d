package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// TagService manages the caller's tags. Rows are only ever created as a
// side effect of recipe writes, so there is no Create here.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagService instance
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// List returns the caller's tags ordered by descending name.
func (s *TagService) List(ctx context.Context, userID uuid.UUID) ([]model.Tag, error) {
	var tags []model.Tag
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Get retrieves one of the caller's tags by id.
func (s *TagService) Get(ctx context.Context, userID uuid.UUID, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update renames one of the caller's tags.
func (s *TagService) Update(ctx context.Context, userID uuid.UUID, id uint, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&tag, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&tag).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag and its recipe associations.
func (s *TagService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.Where("user_id = ?", userID).First(&tag, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
