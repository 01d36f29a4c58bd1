// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfilePicture is used when a user has not set an avatar.
const DefaultProfilePicture = "https://cdn.inkwell.dev/static/default-avatar.png"

// User represents a registered account in the Inkwell application.
// Password holds the bcrypt hash and is never serialized outward.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	ProfilePicture string         `json:"profilePicture"`
	IsAdmin        bool           `gorm:"default:false" json:"isAdmin"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
