package gitcli

import (
	"testing"
	"time"
)

func TestParseGitISO8601(t *testing.T) {
	ts, err := ParseGitISO8601("2020-08-17 16:26:10 -0700")
	if err != nil {
		t.Fatal(err)
	}
	expect := time.Date(2020, 8, 17, 16, 26, 10, 0, time.FixedZone("", -7*60*60))
	if !ts.Equal(expect) {
		t.Errorf("expected %v, got %v", expect, ts)
	}

	if _, err := ParseGitISO8601("Mon Aug 17 16:26:10 2020"); err == nil {
		t.Error("expected an error for a non-iso timestamp")
	}
}
