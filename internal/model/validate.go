package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingID        = errors.New("missing id")
	ErrMissingName      = errors.New("missing name")
	ErrMissingProjectID = errors.New("missing project id")
	ErrMissingTimestamp = errors.New("missing timestamp")
	ErrTimestampOrder   = errors.New("updatedAt before createdAt")
)

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	return nil
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	return nil
}

func checkTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return fmt.Errorf("createdAt: %w", ErrMissingTimestamp)
	}
	if updatedAt.IsZero() {
		return fmt.Errorf("updatedAt: %w", ErrMissingTimestamp)
	}
	if updatedAt.Before(createdAt) {
		return ErrTimestampOrder
	}
	return nil
}
