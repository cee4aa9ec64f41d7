package models

import "time"

// User represents an operator account allowed to obtain bearer tokens.
type User struct {
	// ID is the auto-incremented primary key.
	ID uint `gorm:"primaryKey"`

	// Username is the login name (unique).
	Username string `gorm:"not null;uniqueIndex"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with the given username and password hash.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
	}
}
