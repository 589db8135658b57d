package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRemote indicates no repository, no origin remote, or no remote URL
// was found for the working directory. Resolve swallows it and falls back
// to the no-project namespace.
var ErrNoRemote = errors.New("no origin remote found")

// Resolve returns the project directory for the context, creating it and
// any missing ancestors. The returned bool reports whether resolution fell
// back to the no-project namespace.
func Resolve(ctx *Context) (string, bool, error) {
	dir := ctx.Root
	fellBack := false

	url, err := ctx.Lookup(ctx.WorkDir)
	switch {
	case errors.Is(err, ErrNoRemote):
		dir = filepath.Join(dir, ctx.FallbackNamespace)
		fellBack = true
	case err != nil:
		return "", false, err
	default:
		dir = filepath.Join(dir, Sanitize(url))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create project directory: %w", err)
	}

	return dir, fellBack, nil
}
