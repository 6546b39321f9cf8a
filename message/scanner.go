package message

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Leaf patterns. All are anchored at the cursor; the line patterns never
// cross a newline.
var (
	typeRE       = regexp.MustCompile(`^(?:` + strings.Join(CommitTypes, "|") + `)`)
	scopeRE      = regexp.MustCompile(`^\(.+?\)`)
	lineRE       = regexp.MustCompile(`^.+`)
	bodyPrefixRE = regexp.MustCompile(`^\n\n?`)
)

// scanner is a cursor over the input, with the grammar's three leaf rule
// kinds: exact literals, anchored patterns, and single whitespace
// characters. A failed rule consumes nothing.
type scanner struct {
	src string
	pos int
}

func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// literal consumes the exact text at the cursor. Literals are structural
// markers only and produce no value.
func (s *scanner) literal(text string) bool {
	if !strings.HasPrefix(s.rest(), text) {
		return false
	}
	s.pos += len(text)
	return true
}

// pattern consumes a match anchored at the cursor and returns the matched
// text. Every pattern in this package matches at least one character, so
// an empty result means no match.
func (s *scanner) pattern(re *regexp.Regexp) (string, bool) {
	m := re.FindString(s.rest())
	if m == "" {
		return "", false
	}
	s.pos += len(m)
	return m, true
}

// whitespace consumes exactly one whitespace character.
func (s *scanner) whitespace() bool {
	c, size := utf8.DecodeRuneInString(s.rest())
	if size == 0 || !unicode.IsSpace(c) {
		return false
	}
	s.pos += size
	return true
}

func (s *scanner) errExpected(what string) *ParseError {
	return &ParseError{Offset: s.pos, Expected: what}
}
