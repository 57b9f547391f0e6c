package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")

	ErrUnknownColumn = errors.New("unknown column")
)

// NotFoundError names the entity that was looked up and not found.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Message is the client-facing text, e.g. "Product not found".
func (e *NotFoundError) Message() string {
	return e.Entity + " not found"
}
