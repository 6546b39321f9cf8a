package vcs

import (
	"context"
	"errors"
	"testing"
)

var _ Interface = (*Mock)(nil)

func TestMockCurrentBranch(t *testing.T) {
	m := NewMock()
	_, err := m.CurrentBranch(context.Background())
	nfe := NotFoundError{}
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfe.Ref != "HEAD" {
		t.Errorf("expected ref %q, got %q", "HEAD", nfe.Ref)
	}

	branch, err := m.SetBranch("main").CurrentBranch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if branch != "main" {
		t.Errorf("expected branch %q, got %q", "main", branch)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError{Ref: "v0.1.0"}
	expect := `vcs: ref "v0.1.0" not found`
	if err.Error() != expect {
		t.Errorf("expected %q, got %q", expect, err.Error())
	}
}
