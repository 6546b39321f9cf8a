// Package vcs abstracts version control systems. Currently just git. Only
// the read surface is modeled: commitgram inspects history, it never
// writes to it.
package vcs

import (
	"context"
	"fmt"

	"github.com/commitgram/commitgram/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	ReadCommits(ctx context.Context, query string) ([]*model.Commit, error)
	ReadTags(ctx context.Context, query string) ([]string, error)
	CurrentBranch(ctx context.Context) (string, error)
}
