package database

import (
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// Migrate applies the schema for every model, including the m2m join
// tables gorm derives from the Recipe associations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
	)
}
