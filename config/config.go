package config

import (
	"fmt"

	"github.com/imdario/mergo"
)

// Config controls linting and presentation. Zero values defer to
// GetDefault.
type Config struct {
	Debug              bool              `json:"debug,omitempty"`
	Quiet              bool              `json:"quiet,omitempty"`
	InCI               bool              `json:"ci,omitempty"`
	Format             string            `json:"format,omitempty"`
	AllowedTypes       []string          `json:"allowed_types,omitempty"`
	AllowedScopes      []string          `json:"allowed_scopes,omitempty"`
	ReleaseTypes       map[string]string `json:"release_types,omitempty"`
	BreakingChangeTags []string          `json:"breaking_change_tags,omitempty"`
	Term               TerminalIO        `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

var validFormats = []string{"text", "json", "yaml"}

var validReleaseTypes = []string{"SKIP", "PATCH", "MINOR", "MAJOR"}

func (c Config) Validate() error {
	if c.Format != "" && !oneOf(c.Format, validFormats) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	for typ, name := range c.ReleaseTypes {
		if !oneOf(name, validReleaseTypes) {
			return fmt.Errorf("config: unknown release type %q for commit type %q", name, typ)
		}
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Debug {
		return
	}
	c.Printf(msg, args...)
}

func oneOf(s string, l []string) bool {
	for _, cand := range l {
		if s == cand {
			return true
		}
	}
	return false
}
