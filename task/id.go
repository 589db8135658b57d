package task

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a canonical UUID string for a new task.
func NewID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a parseable UUID.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id %q: %v", ErrInvalidMetadata, id, err)
	}
	return nil
}
