package message

import (
	"unicode"
	"unicode/utf8"
)

// Parse parses one full commit message. Any unconsumed trailing input is a
// failure: the returned tree always accounts for the whole text.
func Parse(text string) (*Message, error) {
	s := &scanner{src: text}

	typ, err := parseType(s)
	if err != nil {
		return nil, err
	}
	if !s.whitespace() {
		return nil, s.errExpected("whitespace after type separator")
	}
	desc, ok := s.pattern(lineRE)
	if !ok {
		return nil, s.errExpected("description")
	}

	msg := &Message{Type: typ, Description: desc}

	// Footer is attempted strictly before Body: footer lines have the
	// stricter "tag: value" shape, so the choice between the two stays
	// deterministic when both could match the same blank-line-prefixed
	// block. A failed footer attempt consumes nothing.
	msg.Footer = parseFooter(s)
	msg.Body = parseBody(s)

	if !s.eof() {
		return nil, s.errExpected("end of input")
	}
	return msg, nil
}

// parseType recognizes the commit classification: a keyword from
// CommitTypes, an optional parenthesized scope, and the ":" separator. The
// separator is consumed but not stored.
func parseType(s *scanner) (Type, error) {
	value, ok := s.pattern(typeRE)
	if !ok {
		return Type{}, s.errExpected("commit type keyword")
	}
	typ := Type{Value: value}
	if scope, ok := s.pattern(scopeRE); ok {
		typ.Scope = scope
	}
	if !s.literal(":") {
		return Type{}, s.errExpected(`":" separator`)
	}
	return typ, nil
}

// parseFooter attempts the footer block: exactly one blank line, then one
// or more footer lines delimited by single newlines. The repeat stops
// before a newline that is not followed by a footer-shaped line, leaving
// it for the body attempt.
func parseFooter(s *scanner) *Footer {
	start := s.pos
	if !s.literal("\n\n") {
		return nil
	}
	line, ok := parseFooterLine(s)
	if !ok {
		s.pos = start
		return nil
	}
	lines := []FooterLine{line}
	for {
		mark := s.pos
		if !s.literal("\n") {
			break
		}
		line, ok := parseFooterLine(s)
		if !ok {
			s.pos = mark
			break
		}
		lines = append(lines, line)
	}
	return &Footer{Lines: lines}
}

// parseFooterLine consumes one line and splits it on the first colon
// followed by a single whitespace character. Both halves must be
// non-empty.
func parseFooterLine(s *scanner) (FooterLine, bool) {
	start := s.pos
	raw, ok := s.pattern(lineRE)
	if !ok {
		return FooterLine{}, false
	}
	tag, value, ok := splitFooterLine(raw)
	if !ok {
		s.pos = start
		return FooterLine{}, false
	}
	return FooterLine{Tag: tag, Value: value}, true
}

// splitFooterLine splits on the first colon-plus-whitespace in the line.
// The split happens at the first separator or not at all: when either
// half is empty there, the line is not footer-shaped.
func splitFooterLine(raw string) (tag, value string, ok bool) {
	for i := 0; i < len(raw)-1; i++ {
		if raw[i] != ':' {
			continue
		}
		c, size := utf8.DecodeRuneInString(raw[i+1:])
		if !unicode.IsSpace(c) {
			continue
		}
		tag, value = raw[:i], raw[i+1+size:]
		if tag == "" || value == "" {
			return "", "", false
		}
		return tag, value, true
	}
	return "", "", false
}

// parseBody attempts the body block: one or two newlines (accepted
// interchangeably), then optionally a single line of text. A body can be
// present with no text when the message ends right after its prefix.
func parseBody(s *scanner) *Body {
	if _, ok := s.pattern(bodyPrefixRE); !ok {
		return nil
	}
	b := &Body{}
	if line, ok := s.pattern(lineRE); ok {
		b.Value = line
	}
	return b
}
