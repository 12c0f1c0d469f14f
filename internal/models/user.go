// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the RecipeBox application.
// The password column only ever holds a bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `gorm:"size:200" json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Recipes   []Recipe  `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
}
