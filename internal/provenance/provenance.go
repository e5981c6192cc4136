// Package provenance records which source revision a build configuration was
// generated from.
package provenance

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source identifies the checked-out revision of the project.
type Source struct {
	Commit string `json:"commit" yaml:"commit"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// Detect opens the git repository containing dir, searching parent
// directories. It returns nil without error when dir is not inside a
// repository or the repository has no commits yet.
func Detect(dir string) (*Source, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read HEAD: %w", err)
	}

	src := &Source{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		src.Branch = head.Name().Short()
	}
	return src, nil
}
