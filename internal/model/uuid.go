package model

import "github.com/google/uuid"

// GenerateID creates a new opaque entity ID.
func GenerateID() string {
	return uuid.New().String()
}
