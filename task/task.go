// Package task implements the task record format and its file store.
//
// A task is one unit of work persisted as a single UTF-8 text file: a YAML
// frontmatter block holding the metadata, followed by a free-form
// description body. Files live in a per-project directory and use the .td
// extension.
package task

import "time"

// Task represents a single tracked task.
type Task struct {
	// Title is the short summary of the task. Required.
	Title string `yaml:"title"`

	// Status is the current state of the task.
	Status Status `yaml:"status"`

	// CreatedAt is when the task was created, in UTC.
	CreatedAt time.Time `yaml:"created_at"`

	// UpdatedAt is when the task was last modified (nil until a
	// modification occurs; omitted from the serialized form when nil).
	UpdatedAt *time.Time `yaml:"updated_at,omitempty"`

	// ID is the task's canonical UUID string.
	ID string `yaml:"id"`

	// Tags is an ordered list of short labels (omitted when empty).
	Tags []string `yaml:"tags,omitempty"`

	// Description is the free-form body text. Not part of the metadata
	// block; everything after the closing delimiter, verbatim.
	Description string `yaml:"-"`
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides additional context. Defaults to empty.
	Description string

	// Tags is an ordered list of labels. Defaults to none.
	Tags []string
}

// New creates a task with a fresh ID, status todo, and created_at set to the
// current UTC time.
func New(title string, opts CreateOptions) Task {
	return Task{
		Title:       title,
		Status:      StatusTodo,
		CreatedAt:   time.Now().UTC(),
		ID:          NewID(),
		Tags:        opts.Tags,
		Description: opts.Description,
	}
}
