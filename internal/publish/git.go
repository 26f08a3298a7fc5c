package publish

import (
	"context"
	"errors"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"newsd/internal/structures"
)

// Driver is the narrow version-control surface the publisher needs. Commit
// reports false when nothing was staged, which is a distinguished success,
// not an error.
type Driver interface {
	Stage(paths ...string) error
	Commit(message string) (bool, error)
	Push(ctx context.Context) error
}

// GitDriver drives the work-tree repository the rendered artifact lives in.
// The repository is opened per call so a repo created after startup still
// works.
type GitDriver struct {
	repoDir     string
	authorName  string
	authorEmail string
}

func NewGitDriver(conf *structures.Config) Driver {
	return &GitDriver{
		repoDir:     conf.Publish.RepoDir,
		authorName:  conf.Publish.AuthorName,
		authorEmail: conf.Publish.AuthorEmail,
	}
}

func (d *GitDriver) worktree() (*git.Repository, *git.Worktree, error) {
	repo, err := git.PlainOpen(d.repoDir)
	if err != nil {
		return nil, nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, err
	}
	return repo, wt, nil
}

func (d *GitDriver) Stage(paths ...string) error {
	_, wt, err := d.worktree()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if _, err := wt.Add(path); err != nil {
			return err
		}
	}
	return nil
}

func (d *GitDriver) Commit(message string) (bool, error) {
	_, wt, err := d.worktree()
	if err != nil {
		return false, err
	}

	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	if !hasStagedChanges(status) {
		return false, nil
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  d.authorName,
			Email: d.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func hasStagedChanges(status git.Status) bool {
	for _, fs := range status {
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			return true
		}
	}
	return false
}

func (d *GitDriver) Push(ctx context.Context) error {
	repo, _, err := d.worktree()
	if err != nil {
		return err
	}
	err = repo.PushContext(ctx, &git.PushOptions{})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}
