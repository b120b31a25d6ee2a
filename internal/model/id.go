package model

import "github.com/google/uuid"

// NewID generates a unique identifier for items, events, users and projects.
func NewID() string {
	return uuid.NewString()
}
