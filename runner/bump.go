package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/commitgram/commitgram/message"
)

var ErrNoTags = errors.New("runner: no release tags found")

var ErrNoRelease = errors.New("runner: no commits call for a release")

// Bump computes the next semantic version from the commits since the
// latest release tag. The strongest release type among the parseable
// commits wins; unparseable commits are skipped. ErrNoRelease is returned
// when nothing stronger than SKIP is found.
func (r *Runner) Bump(ctx context.Context) (semver.Version, error) {
	latest, err := r.latestVersion(ctx)
	query := "HEAD"
	if err != nil {
		if !errors.Is(err, ErrNoTags) {
			return semver.Version{}, err
		}
	} else {
		query = "v" + latest.String() + "..HEAD"
	}

	commits, err := r.vcs.ReadCommits(ctx, query)
	if err != nil {
		return semver.Version{}, err
	}

	var release ReleaseType
	for _, c := range commits {
		m, err := message.Parse(c.Message())
		if err != nil {
			r.cfg.Debugf("skipping unparseable commit %s: %v", c.ShortID(), err)
			continue
		}
		if rt := r.releaseType(m); rt > release {
			release = rt
		}
	}

	next := latest
	switch release {
	case ReleaseMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case ReleaseMinor:
		next.Minor++
		next.Patch = 0
	case ReleasePatch:
		next.Patch++
	default:
		return semver.Version{}, ErrNoRelease
	}
	return next, nil
}

func (r *Runner) latestVersion(ctx context.Context) (semver.Version, error) {
	tags, err := r.vcs.ReadTags(ctx, "v*")
	if err != nil {
		return semver.Version{}, err
	}
	return semverLatest(tags)
}

func (r *Runner) sinceLatestQuery(ctx context.Context) (string, error) {
	latest, err := r.latestVersion(ctx)
	if err != nil {
		if errors.Is(err, ErrNoTags) {
			return "HEAD", nil
		}
		return "", err
	}
	return "v" + latest.String() + "..HEAD", nil
}

// semverLatest finds the highest released version among tags. Prerelease
// tags and tags that are not semver are skipped.
func semverLatest(tags []string) (semver.Version, error) {
	var versions []semver.Version
	for _, t := range tags {
		t = strings.TrimPrefix(t, "v")
		v, err := semver.Parse(t)
		if err != nil {
			continue
		}
		if len(v.Pre) > 0 {
			continue
		}
		versions = append(versions, v)
	}

	semver.Sort(versions)
	if len(versions) > 0 {
		return versions[len(versions)-1], nil
	}
	return semver.Version{}, ErrNoTags
}
