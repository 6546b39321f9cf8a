package gitcli

import (
	"time"
)

// gitISO8601 is the timestamp layout git log prints with --date=iso, as in
// "2020-08-17 16:26:10 -0700". commitgram asks git for dates in this shape
// when reading history for stats and version bumps.
const gitISO8601 = "2006-01-02 15:04:05 -0700"

// ParseGitISO8601 parses a git log iso-format timestamp.
func ParseGitISO8601(s string) (time.Time, error) {
	return time.Parse(gitISO8601, s)
}
