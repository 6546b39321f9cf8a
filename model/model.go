// Package model contains abstract data models.
package model

import (
	"strings"
	"time"
)

// Commit is one commit as read from version control. Subject and Body are
// raw text; the message package gives them structure.
type Commit struct {
	ID             string `json:"commit"`
	Author         string
	AuthorEmail    string
	AuthorDate     time.Time
	Committer      string
	CommitterEmail string
	CommitterDate  time.Time
	Subject        string
	Body           string
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Message reassembles the full commit message text from subject and body,
// the way it was originally written.
func (c *Commit) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + strings.TrimRight(c.Body, "\n")
}
