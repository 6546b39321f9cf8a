package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/commitgram/commitgram/config"
	"github.com/commitgram/commitgram/message"
	"github.com/commitgram/commitgram/runner"
	"github.com/commitgram/commitgram/vcs/gitcli"
)

// Version is overridden by go build -X
var Version string

func main() {
	if err := run(os.Args); err != nil {
		cf := runner.CheckFailure{}
		if errors.As(err, &cf) {
			if werr := cf.WriteFailure(os.Stdout); werr != nil {
				fmt.Fprintln(os.Stderr, "failed to write invalid commit information:", werr)
			}
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var checkCommits []string
	var checkFromGit bool
	var readStats bool
	var bump bool
	flags := pflag.NewFlagSet("commitgram", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print configuration and exit")
	flags.StringVarP(&cfg.Format, "format", "f", "text", "print parsed messages as `format` (text|json|yaml)")
	flags.StringArrayVar(&checkCommits, "check-commit", nil, "only validate provided commit `body`")
	flags.BoolVarP(&checkFromGit, "check", "C", false, "only validate commits since last release")
	flags.BoolVarP(&readStats, "stats", "S", false, "print commit message stats for the repository")
	flags.BoolVar(&bump, "bump", false, "print the next semantic version and exit")
	flags.StringArrayVar(&cfg.AllowedScopes, "allowed-scope", nil, "declare allowed scopes' `name`s")
	flags.StringArrayVar(&cfg.AllowedTypes, "allowed-type", nil, "declare allowed commit `type`s")
	flags.BoolVar(&cfg.InCI, "ci", false, "Run in CI mode")
	flags.BoolVarP(&cfg.Debug, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if !cfg.InCI {
		if env := os.Getenv("CI"); env == "true" || env == "1" || env == "yes" {
			cfg.InCI = true
		}
	}

	fileCfg, err := readConfigYAML(cfgFile)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return err
		}
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Debug {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config: %s", string(b))
	}
	// done setting up config

	git := gitcli.New(cfg, "")
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if readStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	if bump {
		next, err := rnr.Bump(ctx)
		if err != nil {
			return err
		}
		if plainOutput(cfg, isatty.IsTerminal(os.Stdout.Fd())) {
			fmt.Fprintf(cfg.Term.Stdout, "v%s", next)
		} else {
			fmt.Fprintf(cfg.Term.Stdout, "v%s\n", next)
		}
		return nil
	}

	if checkFromGit || flags.Lookup("check-commit").Changed {
		hasPipe := !isatty.IsTerminal(os.Stdin.Fd())
		var err error
		if checkFromGit {
			_, err = rnr.CheckFromGit(ctx, "")
		} else if hasPipe && len(checkCommits) == 1 && checkCommits[0] == "-" {
			_, err = rnr.CheckReader(ctx, os.Stdin)
		} else {
			_, err = rnr.CheckMessages(ctx, checkCommits)
		}
		if err != nil {
			return err
		}
		cfg.Printf("OK")
		return nil
	}

	// remaining args are commit message files to parse and print
	if len(args) == 0 {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			return parseAndPrint(cfg, rnr, "<stdin>", string(raw))
		}
		usage(cfg, flags)
		return errors.New("no commit message provided")
	}
	for _, p := range args {
		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		if err := parseAndPrint(cfg, rnr, p, string(raw)); err != nil {
			return err
		}
	}
	return nil
}

// plainOutput reports whether output should skip the trailing newline so the
// result can be captured verbatim: quiet mode, CI mode, or a piped stdout.
func plainOutput(cfg config.Config, istty bool) bool {
	return cfg.Quiet || cfg.InCI || !istty
}

func parseAndPrint(cfg config.Config, rnr *runner.Runner, name, raw string) error {
	msg, err := message.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	switch cfg.Format {
	case "json":
		b, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
	case "yaml":
		b, err := yaml.Marshal(msg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
	default:
		return rnr.Describe(cfg.Term.Stdout, msg)
	}
	return nil
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [file...]

A utility for parsing and checking Conventional Commits messages.

FLAGS
%s
EXAMPLES

# parse a commit message file and print its structure
$ commitgram .git/COMMIT_EDITMSG

# the same, as json
$ commitgram --format json .git/COMMIT_EDITMSG

# validate one message (commit-msg hook style)
$ commitgram --check-commit "feat(api): add cool endpoint"

# validate everything since the last release tag
$ commitgram --check

# print the next version implied by the commits since the last release
$ commitgram --bump
`, os.Args[0], flags.FlagUsages())
}

func readConfigYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "commitgram.yaml")
		b, err := os.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
