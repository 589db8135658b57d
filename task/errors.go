package task

import (
	"errors"

	"github.com/tdtracker/td/internal/validation"
)

var (
	// ErrMissingOpeningDelimiter indicates a task file does not start with
	// the '---' delimiter line.
	ErrMissingOpeningDelimiter = errors.New("task file does not start with '---' followed by a newline")
	// ErrMissingClosingDelimiter indicates the closing '---' delimiter line
	// was not found.
	ErrMissingClosingDelimiter = errors.New("missing closing '---'")
	// ErrInvalidMetadata indicates the metadata block could not be parsed.
	ErrInvalidMetadata = errors.New("invalid task metadata")
	// ErrInvalidStatus indicates a status value is outside the closed set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrEmptyTitle indicates a task is missing its title.
	ErrEmptyTitle = errors.New("task title is required")
)

func formatInvalidStatusError(status Status) error {
	return validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
}
