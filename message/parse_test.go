package message

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tcs := []struct {
		name        string
		in          string
		expectType  string
		expectScope string
		expectDesc  string
	}{
		{
			name:       "minimal",
			in:         "feat: this is a commit decription",
			expectType: "feat",
			expectDesc: "this is a commit decription",
		},
		{
			name:        "scoped",
			in:          "feat(scope): this is a commit decription",
			expectType:  "feat",
			expectScope: "(scope)",
			expectDesc:  "this is a commit decription",
		},
		{
			name:        "scope-with-dashes",
			in:          "fix(sub-system): handle empty input",
			expectType:  "fix",
			expectScope: "(sub-system)",
			expectDesc:  "handle empty input",
		},
		{
			name:       "newline-separator",
			in:         "chore:\nregenerate",
			expectType: "chore",
			expectDesc: "regenerate",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if msg.Type.Value != tc.expectType {
				t.Errorf("expected type %q, got %q", tc.expectType, msg.Type.Value)
			}
			if msg.Type.Scope != tc.expectScope {
				t.Errorf("expected scope %q, got %q", tc.expectScope, msg.Type.Scope)
			}
			if msg.Description != tc.expectDesc {
				t.Errorf("expected description %q, got %q", tc.expectDesc, msg.Description)
			}
			if msg.Body != nil {
				t.Errorf("expected no body, got %+v", msg.Body)
			}
			if msg.Footer != nil {
				t.Errorf("expected no footer, got %+v", msg.Footer)
			}
		})
	}
}

func TestParseAllCommitTypes(t *testing.T) {
	for _, typ := range CommitTypes {
		t.Run(typ, func(t *testing.T) {
			msg, err := Parse(typ + ": cool change")
			if err != nil {
				t.Fatal(err)
			}
			if msg.Type.Value != typ {
				t.Errorf("expected type %q, got %q", typ, msg.Type.Value)
			}
			if msg.Description != "cool change" {
				t.Errorf("expected description %q, got %q", "cool change", msg.Description)
			}
		})
	}
}

func TestParseBody(t *testing.T) {
	tcs := []struct {
		name        string
		in          string
		expectValue string
	}{
		{
			name:        "blank-line",
			in:          "feat: this is a commit decription\n\nThis is a body",
			expectValue: "This is a body",
		},
		{
			name:        "single-newline",
			in:          "feat: this is a commit decription\nThis is a body",
			expectValue: "This is a body",
		},
		{
			name:        "trailing-newline-only",
			in:          "feat: this is a commit decription\n",
			expectValue: "",
		},
		{
			name:        "blank-line-only",
			in:          "feat: this is a commit decription\n\n",
			expectValue: "",
		},
		{
			// the first separator has an empty tag, so the line is not
			// footer-shaped even though a later split would work
			name:        "leading-separator-line",
			in:          "fix: oops\n\n: a: b",
			expectValue: ": a: b",
		},
		{
			name:        "footer-tag-without-value",
			in:          "fix: oops\n\nRefs: ",
			expectValue: "Refs: ",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if msg.Body == nil {
				t.Fatal("expected body, got none")
			}
			if msg.Body.Value != tc.expectValue {
				t.Errorf("expected body value %q, got %q", tc.expectValue, msg.Body.Value)
			}
			if msg.Footer != nil {
				t.Errorf("expected no footer, got %+v", msg.Footer)
			}
		})
	}
}

func TestParseFooter(t *testing.T) {
	tcs := []struct {
		name        string
		in          string
		expectLines []FooterLine
	}{
		{
			name: "breaking-change",
			in:   "feat: this is a commit decription\n\nBREAKING CHANGE: X now does Y",
			expectLines: []FooterLine{
				{Tag: "BREAKING CHANGE", Value: "X now does Y"},
			},
		},
		{
			name: "multiple-lines",
			in:   "fix: oops\n\nReviewed-by: Z\nRefs: #123",
			expectLines: []FooterLine{
				{Tag: "Reviewed-by", Value: "Z"},
				{Tag: "Refs", Value: "#123"},
			},
		},
		{
			name: "value-containing-separator",
			in:   "fix: oops\n\nRefs: see: the tracker",
			expectLines: []FooterLine{
				{Tag: "Refs", Value: "see: the tracker"},
			},
		},
		{
			name: "tag-containing-colon",
			in:   "fix: oops\n\na:b: c",
			expectLines: []FooterLine{
				{Tag: "a:b", Value: "c"},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if msg.Footer == nil {
				t.Fatal("expected footer, got none")
			}
			if len(msg.Footer.Lines) != len(tc.expectLines) {
				t.Fatalf("expected %d footer lines, got %d", len(tc.expectLines), len(msg.Footer.Lines))
			}
			for i, expect := range tc.expectLines {
				got := msg.Footer.Lines[i]
				if got != expect {
					t.Errorf("line %d: expected %+v, got %+v", i, expect, got)
				}
			}
			if msg.Body != nil {
				t.Errorf("expected no body, got %+v", msg.Body)
			}
		})
	}
}

func TestParseFooterThenBody(t *testing.T) {
	msg, err := Parse("feat: cool\n\nReviewed-by: Z\nplain trailing line")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Footer == nil || len(msg.Footer.Lines) != 1 {
		t.Fatalf("expected 1 footer line, got %+v", msg.Footer)
	}
	if msg.Body == nil || msg.Body.Value != "plain trailing line" {
		t.Fatalf("expected trailing body line, got %+v", msg.Body)
	}
}

func TestParseFailures(t *testing.T) {
	tcs := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "unknown-type", in: "foo: bar"},
		{name: "type-prefix-only", in: "feature: bar"},
		{name: "uppercase-type", in: "Feat: bar"},
		{name: "missing-separator", in: "feat bar"},
		{name: "missing-whitespace", in: "feat:bar"},
		{name: "missing-description", in: "feat: "},
		{name: "empty-scope", in: "feat(): bar"},
		{name: "unclosed-scope", in: "feat(scope: bar"},
		{name: "text-after-scope", in: "feat(scope)x: bar"},
		{name: "second-body-line", in: "feat: bar\n\nbody one\nbody two"},
		{name: "second-paragraph", in: "feat: bar\n\nbody\n\nmore body"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(tc.in)
			if err == nil {
				t.Fatalf("expected parse failure, got %+v", msg)
			}
			perr := &ParseError{}
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Offset < 0 || perr.Offset > len(tc.in) {
				t.Errorf("offset %d out of range for input of length %d", perr.Offset, len(tc.in))
			}
		})
	}
}

func TestScopeName(t *testing.T) {
	typ := Type{Value: "feat", Scope: "(api)"}
	if name := typ.ScopeName(); name != "api" {
		t.Errorf("expected scope name %q, got %q", "api", name)
	}
	typ = Type{Value: "feat"}
	if name := typ.ScopeName(); name != "" {
		t.Errorf("expected empty scope name, got %q", name)
	}
}
