package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	PublishedAt time.Time       `gorm:"not null;index" json:"published_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Categories  []CategoryModel `gorm:"many2many:category_post" json:"categories,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
