// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post.
//
// Likes is the set of user IDs that currently like the comment, stored as a
// JSON column. NumberOfLikes is a separately stored counter kept in sync by
// ToggleLike; under concurrent toggles the save is last-write-wins and the
// counter can drift from len(Likes).
type Comment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	PostID        uint           `gorm:"not null;index" json:"postId"`
	UserID        uint           `gorm:"not null;index" json:"userId"`
	Likes         UintSet        `gorm:"serializer:json;type:jsonb" json:"likes"`
	NumberOfLikes int            `gorm:"default:0" json:"numberOfLikes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UintSet is an ordered set of user IDs serialized as a JSON array.
type UintSet []uint

// Contains reports whether id is present in the set.
func (s UintSet) Contains(id uint) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleLike adds userID to the like set if absent, removes it if present,
// and adjusts NumberOfLikes accordingly. It reports whether the comment is
// liked by the user after the toggle.
func (c *Comment) ToggleLike(userID uint) bool {
	for i, v := range c.Likes {
		if v == userID {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			c.NumberOfLikes--
			return false
		}
	}
	c.Likes = append(c.Likes, userID)
	c.NumberOfLikes++
	return true
}
