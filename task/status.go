package task

import (
	"fmt"

	internalstrings "github.com/tdtracker/td/internal/strings"
	"gopkg.in/yaml.v3"
)

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusDoing indicates the task is in progress.
	StatusDoing Status = "doing"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseStatus parses a status token case-insensitively into the closed set.
func ParseStatus(value string) (Status, error) {
	status := Status(internalstrings.NormalizeLowerTrimSpace(value))
	if !status.IsValid() {
		return "", formatInvalidStatusError(status)
	}
	return status, nil
}

// UnmarshalYAML parses a status scalar, rejecting values outside the closed set.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: status must be a scalar", ErrInvalidMetadata)
	}
	status, err := ParseStatus(value.Value)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
