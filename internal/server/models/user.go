// Package models defines the persisted entities of the Swadesh server.
package models

import "time"

// User mirrors the users table. The ID is the identity provider's subject
// (Google account id), not a generated value, so login upserts are
// idempotent by construction.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	SetupCompleted  bool      `json:"setupCompleted"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserProfile is what the identity provider reports about a user at login.
type UserProfile struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}
