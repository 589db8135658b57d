package task

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExt is the extension used for task files.
const FileExt = ".td"

// Store reads and writes task files in a single project directory.
type Store struct {
	dir string
}

// NewStore returns a store over an existing project directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Add encodes the task and writes it to a file named after its ID, so
// successive adds never overwrite each other. Returns the file name.
func (s *Store) Add(task Task) (string, error) {
	if task.Title == "" {
		return "", ErrEmptyTitle
	}
	if err := ValidateID(task.ID); err != nil {
		return "", err
	}

	content, err := Encode(&task)
	if err != nil {
		return "", err
	}

	name := task.ID + FileExt
	if err := writeFileAtomic(filepath.Join(s.dir, name), []byte(content)); err != nil {
		return "", fmt.Errorf("write task file: %w", err)
	}
	return name, nil
}

// List returns the names of all entries in the project directory, in
// filesystem enumeration order. A directory with no entries yields an empty
// list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read project directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Read loads and decodes one task file by name.
func (s *Store) Read(name string) (*Task, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return Decode(string(content))
}

// writeFileAtomic writes data to a temp file and renames it into place, so
// a failed write never leaves a truncated task file behind.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
