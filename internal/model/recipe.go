package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is owned by exactly one user. Tags and ingredients are shared
// association targets: detaching or deleting a recipe never removes them.
type Recipe struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	TimeMinutes uint           `gorm:"not null" json:"time_minutes"`
	Price       Decimal        `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string         `gorm:"size:255" json:"link"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Tags        []Tag          `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient   `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}

type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
}
