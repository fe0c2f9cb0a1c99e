package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID        string      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	IsActive  bool        `gorm:"not null" json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Posts     []PostModel `gorm:"many2many:category_post" json:"posts,omitempty"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
