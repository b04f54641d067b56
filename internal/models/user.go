package models

import "gorm.io/gorm"

// User represents a user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"size:150;unique;not null"`
	Email        string `gorm:"size:254;unique;not null"`
	FirstName    string `gorm:"size:150"`
	LastName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	// AvatarRef is the path of the stored avatar image relative to the
	// media directory; empty when the user has no avatar.
	AvatarRef string `gorm:"size:512"`
}
