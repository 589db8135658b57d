// Package project resolves the storage directory that scopes tasks to the
// repository the user is working in.
//
// The directory is derived from the repository's origin remote URL,
// sanitized into a single path segment under the storage root. When no
// repository or remote can be found, storage falls back to an explicit
// no-project namespace rather than the shared root.
package project

import (
	"github.com/tdtracker/td/internal/paths"
)

// DefaultFallbackNamespace is the directory used when no origin remote
// resolves.
const DefaultFallbackNamespace = "no-project"

// RemoteLookup returns the origin remote URL for the repository enclosing
// dir, or ErrNoRemote when there is no repository, no origin remote, or no
// URL configured on it.
type RemoteLookup func(dir string) (string, error)

// Context carries the environment captured once at startup. Resolution never
// reads ambient process state after construction, so tests can inject a fake
// lookup and a scratch root.
type Context struct {
	// WorkDir is the directory the tool was invoked from.
	WorkDir string

	// Root is the storage root (default ~/.td).
	Root string

	// FallbackNamespace is the directory name used under Root when no
	// origin remote resolves.
	FallbackNamespace string

	// Lookup finds the origin remote URL for a working directory.
	Lookup RemoteLookup
}

// NewContext captures the home directory, working directory, and the git
// remote lookup.
func NewContext() (*Context, error) {
	root, err := paths.DefaultRootDir()
	if err != nil {
		return nil, err
	}

	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	return &Context{
		WorkDir:           workDir,
		Root:              root,
		FallbackNamespace: DefaultFallbackNamespace,
		Lookup:            GitRemoteURL,
	}, nil
}
