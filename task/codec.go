package task

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter bounds the metadata block on both sides.
const delimiter = "---\n"

// Decode parses the textual representation of a task.
//
// The content must start with a '---' delimiter line; the metadata block
// runs until the next '---' delimiter; everything after it is the
// description, verbatim.
func Decode(content string) (*Task, error) {
	if !strings.HasPrefix(content, delimiter) {
		return nil, ErrMissingOpeningDelimiter
	}

	rest := content[len(delimiter):]
	// The first occurrence of "---\n" after the opening delimiter closes
	// the metadata block, even mid-line; the search is deliberately
	// unanchored.
	end := strings.Index(rest, delimiter)
	if end < 0 {
		return nil, ErrMissingClosingDelimiter
	}

	var task Task
	if err := yaml.Unmarshal([]byte(rest[:end]), &task); err != nil {
		return nil, wrapMetadataError(err)
	}
	task.Description = rest[end+len(delimiter):]

	if err := validateMetadata(&task); err != nil {
		return nil, err
	}

	return &task, nil
}

// Encode renders a task into its textual representation: delimiter line,
// YAML metadata, delimiter line, then the raw description with no trailing
// marker.
func Encode(task *Task) (string, error) {
	metadata, err := yaml.Marshal(task)
	if err != nil {
		return "", wrapMetadataError(err)
	}
	return delimiter + string(metadata) + delimiter + task.Description, nil
}

func validateMetadata(task *Task) error {
	if task.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMetadata, ErrEmptyTitle)
	}
	if !task.Status.IsValid() {
		return fmt.Errorf("%w: %w", ErrInvalidMetadata, formatInvalidStatusError(task.Status))
	}
	if task.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing created_at", ErrInvalidMetadata)
	}
	if err := ValidateID(task.ID); err != nil {
		return err
	}
	return nil
}

func wrapMetadataError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
}
