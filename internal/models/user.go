// Package models contains data structures for the application's domain models.
package models

import "strings"

// DefaultImageURL is the avatar used when a user has no image of their own.
const DefaultImageURL = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTx4ETXIMlUwZYiZuG1B8eLRTu-oDZmV4lW9tuIe3lmIA&s"

// Field limits mirrored by the users and posts table definitions.
const (
	MaxNameLength  = 20
	MaxTitleLength = 150
)

// User represents a profile in the Blogly application.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(20);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(20);not null" json:"last_name"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Posts     []Post `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"posts,omitempty"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
