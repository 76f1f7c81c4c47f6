// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Profit Tracker system.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User. When username is empty it defaults to the local part of the email.
func NewUser(email, username, passwordHash string) *User {
	now := time.Now().UTC()
	if strings.TrimSpace(username) == "" {
		username = DefaultUsername(email)
	}
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DefaultUsername returns the part of an email address before the @.
func DefaultUsername(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local
}
