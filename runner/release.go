package runner

import "github.com/commitgram/commitgram/message"

type ReleaseType int

const (
	_ ReleaseType = iota

	ReleaseSkip
	ReleasePatch
	ReleaseMinor
	ReleaseMajor
)

func (t ReleaseType) String() string {
	switch t {
	case ReleaseSkip:
		return "SKIP"
	case ReleasePatch:
		return "PATCH"
	case ReleaseMinor:
		return "MINOR"
	case ReleaseMajor:
		return "MAJOR"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

func ReleaseTypeFromString(s string) ReleaseType {
	switch s {
	case "SKIP":
		return ReleaseSkip
	case "PATCH":
		return ReleasePatch
	case "MINOR":
		return ReleaseMinor
	case "MAJOR":
		return ReleaseMajor
	}
	panic("unknown release type: " + s)
}

// releaseType maps a parsed message to its release impact. A footer tag
// named in BreakingChangeTags forces a major release regardless of the
// commit type.
func (r *Runner) releaseType(msg *message.Message) ReleaseType {
	if msg.Footer != nil {
		for _, line := range msg.Footer.Lines {
			if inStrs(line.Tag, r.cfg.BreakingChangeTags) {
				return ReleaseMajor
			}
		}
	}
	if name, ok := r.cfg.ReleaseTypes[msg.Type.Value]; ok {
		return ReleaseTypeFromString(name)
	}
	return ReleaseSkip
}
