package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/commitgram/commitgram/model"
	"github.com/commitgram/commitgram/vcs"
)

func TestStats(t *testing.T) {
	m := vcs.NewMock().SetCommits(
		&model.Commit{ID: "deadbeef", Subject: "feat(api): cool feature"},
		&model.Commit{ID: "12345678", Subject: "fix: cool fix"},
		&model.Commit{ID: "87654321", Subject: "fix: another fix"},
		&model.Commit{ID: "beefdead", Subject: "merge branch stuff"},
	)
	rnr := newTestRunner(nil, m)

	stats, err := rnr.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Commits != 4 {
		t.Errorf("expected 4 commits, got %d", stats.Commits)
	}
	if len(stats.Counts) != 3 {
		t.Errorf("expected 3 counters, got %d", len(stats.Counts))
	}

	expectCounters := []string{"scope", "commit_type", "release_type"}
	for _, expect := range expectCounters {
		counts, ok := stats.Counts[expect]
		if !ok {
			t.Errorf("expected %q counter", expect)
		} else if len(counts) == 0 {
			t.Errorf("expected %q counter not to be empty", expect)
		}
	}

	b := &bytes.Buffer{}
	if err := stats.TextSummary(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("stats output:\n%s", out)

	if !strings.HasPrefix(out, "4 commits\n") {
		t.Errorf("expected commit total first, got %q", out)
	}
	for _, expect := range []string{"Commit Type:", "Scope:", "Release Type:", "fix", "n/a"} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected summary to contain %q", expect)
		}
	}
}

// Stats resolves the current branch when there is one, and falls back to
// HEAD when there isn't (TestStats above covers the fallback).
func TestStatsCurrentBranch(t *testing.T) {
	m := vcs.NewMock().SetBranch("main").SetCommits(
		&model.Commit{ID: "deadbeef", Subject: "feat: cool feature"},
	)
	rnr := newTestRunner(nil, m)

	stats, err := rnr.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Commits != 1 {
		t.Errorf("expected 1 commit, got %d", stats.Commits)
	}
}
