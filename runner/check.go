package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/commitgram/commitgram/message"
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	commitID string
	subject  string
	err      error
}

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

// WriteFailure writes the failures grouped by commit, one commit subject
// per group with its failures indented below it.
func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	var groups []CheckFailure
	for _, failure := range cf.Failures {
		matched := false
		for i, group := range groups {
			prev := group.Failures[0]
			if failure.commitID != "" && failure.commitID == prev.commitID {
				matched = true
			} else if failure.subject != "" && failure.subject == prev.subject {
				matched = true
			}
			if matched {
				groups[i].Failures = append(groups[i].Failures, failure)
				break
			}
		}
		if !matched {
			groups = append(groups, CheckFailure{Failures: []FailureEntry{failure}})
		}
	}

	for _, group := range groups {
		bw.WriteString(group.Failures[0].subject)
		bw.WriteString("\n")
		for _, failure := range group.Failures {
			bw.WriteString("  ")
			bw.WriteString(failure.err.Error())
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

// CheckMessages parses and lints raw commit messages. It returns the
// parsed trees only when every message passes; otherwise the error is a
// CheckFailure carrying one entry per problem.
func (r *Runner) CheckMessages(ctx context.Context, msgs []string) ([]*message.Message, error) {
	var failures []FailureEntry
	var parsed []*message.Message
	for _, raw := range msgs {
		subject := firstLine(raw)
		m, err := message.Parse(raw)
		if err != nil {
			failures = append(failures, FailureEntry{subject: subject, err: err})
			continue
		}
		parsed = append(parsed, m)
		failures = append(failures, r.lint(m, "", subject)...)
	}
	if len(failures) > 0 {
		return nil, CheckFailure{Failures: failures}
	}
	return parsed, nil
}

// CheckReader checks a single commit message read in full from rdr.
func (r *Runner) CheckReader(ctx context.Context, rdr io.Reader) ([]*message.Message, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return r.CheckMessages(ctx, []string{string(raw)})
}

// CheckFromGit checks commits read from version control. An empty query
// means every commit since the latest release tag, or all of HEAD when
// there are no tags yet.
func (r *Runner) CheckFromGit(ctx context.Context, query string) ([]*message.Message, error) {
	if query == "" {
		var err error
		query, err = r.sinceLatestQuery(ctx)
		if err != nil {
			return nil, err
		}
	}
	commits, err := r.vcs.ReadCommits(ctx, query)
	if err != nil {
		return nil, err
	}

	var failures []FailureEntry
	var parsed []*message.Message
	for _, c := range commits {
		m, err := message.Parse(c.Message())
		if err != nil {
			failures = append(failures, FailureEntry{commitID: c.ID, subject: c.Subject, err: err})
			continue
		}
		parsed = append(parsed, m)
		failures = append(failures, r.lint(m, c.ID, c.Subject)...)
	}
	if len(failures) > 0 {
		return nil, CheckFailure{Failures: failures}
	}
	return parsed, nil
}

func (r *Runner) lint(m *message.Message, commitID, subject string) []FailureEntry {
	var failures []FailureEntry
	if scope := m.Type.ScopeName(); scope != "" && len(r.cfg.AllowedScopes) > 0 && !inStrs(scope, r.cfg.AllowedScopes) {
		failures = append(failures, FailureEntry{commitID: commitID, subject: subject, err: fmt.Errorf("scope %q is disallowed", scope)})
	}
	if len(r.cfg.AllowedTypes) > 0 && !inStrs(m.Type.Value, r.cfg.AllowedTypes) {
		failures = append(failures, FailureEntry{commitID: commitID, subject: subject, err: fmt.Errorf("commit type %q is disallowed", m.Type.Value)})
	}
	return failures
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
