// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Defaults applied when a post is created without the optional fields.
const (
	DefaultPostCategory = "uncategorized"
	DefaultPostImage    = "https://cdn.inkwell.dev/static/default-post-cover.png"
)

// Post represents a published article in the Inkwell application.
// Slug is derived from Title at creation time and never recomputed on update.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Category  string         `gorm:"default:'uncategorized'" json:"category"`
	Image     string         `json:"image"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Slugify derives a URL-safe identifier from a post title: words are joined
// with "-", the result is lowercased and every remaining non-alphanumeric
// character becomes "-". The function is idempotent.
func Slugify(title string) string {
	joined := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
