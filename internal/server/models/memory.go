package models

import "time"

// Memory is a short user-authored fact used to personalize AI responses.
// Every read and mutation is scoped by UserID; a memory owned by someone
// else is reported as not found, never as a permission error.
type Memory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
