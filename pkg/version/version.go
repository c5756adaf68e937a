package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/Masterminds/semver"
	"github.com/carlmjohnson/versioninfo"
)

const ProjectURL = "https://github.com/dogeorg/accesspoints"

/* injected */

var release string

/* ** */

type VersionInfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type VersionInfo struct {
	Release   string         `json:"release"`
	Major     int64          `json:"major"`
	Minor     int64          `json:"minor"`
	Patch     int64          `json:"patch"`
	GoVersion string         `json:"goVersion"`
	Git       VersionInfoGit `json:"git"`
	URL       string         `json:"url"`
}

// GetRelease describes the running binary. The release comes from
// -ldflags "-X .../pkg/version.release=0.2.39", then from the module
// version go install stamped in, else "unknown".
func GetRelease() *VersionInfo {
	return newVersionInfo(release, versioninfo.Version, versioninfo.Revision, versioninfo.DirtyBuild)
}

func newVersionInfo(injected, module, commit string, dirty bool) *VersionInfo {
	rel := injected
	if rel == "" && module != "" && module != "(devel)" {
		rel = module
	}
	if rel == "" {
		rel = "unknown"
	}

	info := &VersionInfo{
		Release:   rel,
		GoVersion: runtime.Version(),
		Git: VersionInfoGit{
			Commit: commit,
			Dirty:  dirty,
		},
		URL: ProjectURL,
	}

	if v, err := semver.NewVersion(rel); err == nil {
		info.Major = v.Major()
		info.Minor = v.Minor()
		info.Patch = v.Patch()
	}

	return info
}

// IsRelease reports whether Release parsed as a version.
func (v *VersionInfo) IsRelease() bool {
	_, err := semver.NewVersion(v.Release)
	return err == nil
}

func (v *VersionInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "accesspoints version: [%s], %s\n", v.Release, v.GoVersion)
	if v.IsRelease() {
		fmt.Fprintf(w, "major version: %d  (breaking changes)\n", v.Major)
		fmt.Fprintf(w, "minor version: %d  (extra feature)\n", v.Minor)
		fmt.Fprintf(w, "patch version: %d  (fixes)\n", v.Patch)
	}
	fmt.Fprintf(w, "Git: %s\n", v.Git.Commit)
	fmt.Fprintf(w, "Dirty: %t\n", v.Git.Dirty)
	fmt.Fprintf(w, "Find out the most recent version at %s\n", v.URL)
}
