package models

import "time"

// User represents a registered account of the shop.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the globally unique identifier of the user (UUID),
	// generated at registration time.
	ID string `json:"id"`

	// Username is the unique public handle used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON representation.
	PasswordHash string `json:"-"`

	// IsAdmin marks accounts with catalog and inventory management
	// privileges. Defaults to false at registration.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
