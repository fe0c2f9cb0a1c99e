package entity

import "time"

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`

	// PublishedPostsCount is populated by listing queries only.
	PublishedPostsCount int64 `json:"published_posts_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `json:"posts,omitempty"`
}
