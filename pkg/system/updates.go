package system

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"
	"golang.org/x/mod/semver"
)

const RELEASE_REPO = "https://github.com/dogeorg/accesspoints.git"

type RepositoryTag struct {
	Tag string
}

func getRepoTags(ctx context.Context, repo string) ([]RepositoryTag, error) {
	rem := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{repo},
	})

	refs, err := rem.ListContext(ctx, &git.ListOptions{
		PeelingOption: git.AppendPeeled,
	})
	if err != nil {
		return []RepositoryTag{}, fmt.Errorf("failed to get repo %s tags: %w", repo, err)
	}

	var tags []RepositoryTag
	for _, ref := range refs {
		if ref.Name().IsTag() && semver.IsValid(ref.Name().Short()) {
			tags = append(tags, RepositoryTag{
				Tag: ref.Name().Short(),
			})
		}
	}

	return tags, nil
}

// GetNewerReleases lists release tags of repo that are newer than current.
func GetNewerReleases(ctx context.Context, repo, current string) ([]string, error) {
	tags, err := getRepoTags(ctx, repo)
	if err != nil {
		return nil, err
	}
	return newerTags(tags, current), nil
}

// newerTags keeps the tags newer than current, oldest first. A current
// version that is not valid semver (a dev build) treats every tag as newer.
func newerTags(tags []RepositoryTag, current string) []string {
	current = canonicalVersion(current)

	var newer []string
	for _, tag := range tags {
		if !semver.IsValid(tag.Tag) {
			continue
		}
		if !semver.IsValid(current) || semver.Compare(tag.Tag, current) > 0 {
			if !slices.Contains(newer, tag.Tag) {
				newer = append(newer, tag.Tag)
			}
		}
	}

	semver.Sort(newer)
	return newer
}

func canonicalVersion(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return v
}
