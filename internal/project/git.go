package project

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// GitRemoteURL discovers the git repository enclosing dir by walking upward
// through ancestor directories and returns the first URL of its "origin"
// remote. Missing repository, remote, or URL all map to ErrNoRemote.
func GitRemoteURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", ErrNoRemote
	}
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", ErrNoRemote
	}
	if err != nil {
		return "", fmt.Errorf("find origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}
	return urls[0], nil
}
