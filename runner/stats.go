package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/commitgram/commitgram/message"
	"github.com/commitgram/commitgram/vcs"
)

type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits\n\n", s.Commits))

	for _, name := range s.sortedBuckets() {
		counts := s.Counts[name]
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats reads the current branch's commits and counts them by commit
// type, scope, and release type. Commits that don't parse land in the
// "n/a" row of each bucket.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
	query := "HEAD"
	branch, err := r.vcs.CurrentBranch(ctx)
	if err != nil {
		nfe := vcs.NotFoundError{}
		if !errors.As(err, &nfe) {
			return nil, err
		}
		r.cfg.Debugf("no current branch, reading HEAD: %v", err)
	} else {
		query = branch
	}

	commits, err := r.vcs.ReadCommits(ctx, query)
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		Commits: int64(len(commits)),
		Counts:  make(map[string][]*statCount),
	}

	for _, c := range commits {
		m, err := message.Parse(c.Message())
		if err != nil {
			stats.Add("scope", "", 1)
			stats.Add("commit_type", "", 1)
			stats.Add("release_type", "", 1)
			continue
		}
		stats.Add("scope", m.Type.ScopeName(), 1)
		stats.Add("commit_type", m.Type.Value, 1)
		stats.Add("release_type", r.releaseType(m).String(), 1)
	}
	return stats, nil
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

var titleCaser = cases.Title(language.English)

func toTitle(s string) string {
	return titleCaser.String(nonAlphaRE.ReplaceAllLiteralString(s, " "))
}
