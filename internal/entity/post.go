package entity

import "time"

type Post struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Categories []Category `json:"categories,omitempty"`
}

// Published reports whether the post is visible at the given instant.
// Visibility is a pure function of the clock; there is no status column.
func (p *Post) Published(now time.Time) bool {
	return !p.PublishedAt.After(now)
}
