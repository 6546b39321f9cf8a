// Package commitgram parses Conventional Commits messages into structured
// trees and checks them against configured policies.
//
// Related packages: message, config, runner, model, vcs, vcs/gitcli
package commitgram

import "github.com/commitgram/commitgram/config"

// Config holds most of the configuration variables for commitgram. This
// struct is intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/commitgram/commitgram/config Config" for more
// information.
type Config = config.Config
