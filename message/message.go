// Package message implements the Conventional Commits grammar.
//
// A commit message has the shape:
//
//	<type>[(<scope>)]: <description>
//
//	[optional body]
//
//	[optional footer(s)]
//
// Parse turns one message into a Message tree. It is a pure function of the
// input text: it either returns a fully-populated tree or a *ParseError,
// never a partial result. Calls are independent and safe to make from
// multiple goroutines.
package message

import (
	"fmt"
	"strings"
)

// CommitTypes is the closed set of commit classifications the grammar
// accepts. Matching is case-sensitive and exact.
var CommitTypes = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"build",
	"ci",
	"chore",
	"revert",
}

// Message is the root of a parsed commit message. Type and Description are
// always set. Footer and Body are each optional: a message can have
// neither, either, or both.
type Message struct {
	Type        Type    `json:"type"`
	Description string  `json:"description"`
	Footer      *Footer `json:"footer,omitempty"`
	Body        *Body   `json:"body,omitempty"`
}

// Type is the commit classification. Value is one of CommitTypes.
type Type struct {
	Value string `json:"value"`
	// Scope is the raw parenthesized span as matched, e.g. "(api)". Empty
	// when the message has no scope.
	Scope string `json:"scope,omitempty"`
}

// ScopeName returns the scope without its surrounding parentheses, or ""
// when the message has no scope.
func (t Type) ScopeName() string {
	return strings.TrimSuffix(strings.TrimPrefix(t.Scope, "("), ")")
}

// Body is the optional free-text body. Value can be empty when the body's
// leading newlines matched but no text line followed; callers should treat
// that the same as no body content.
type Body struct {
	Value string `json:"value,omitempty"`
}

// Footer is the footer block. Lines is never empty on a parsed message.
type Footer struct {
	Lines []FooterLine `json:"lines"`
}

// FooterLine is one "tag: value" footer entry. The tag can contain spaces,
// as in "BREAKING CHANGE: ...".
type FooterLine struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// ParseError reports where parsing stopped and what was expected there.
// There is no recovery: any leaf rule failing at its expected position
// fails the whole parse.
type ParseError struct {
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("message: parse failed at offset %d: expected %s", e.Offset, e.Expected)
}
