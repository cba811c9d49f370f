// Package build describes the sash binary that is running.
package build

import "fmt"

// DevVersion is the version of binaries built without ldflags.
const DevVersion = "dev"

// Info holds the version stamp cmd/sash receives through ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsRelease reports whether the binary carries a tagged version.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != DevVersion
}

// ShortCommit trims the commit hash to the 7 characters git prints.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// Summary is the one-line form printed by --version, e.g. "v0.3.0 (1a2b3c4)".
func (i Info) Summary() string {
	version := i.Version
	if version == "" {
		version = DevVersion
	}
	if commit := i.ShortCommit(); commit != "" && commit != "unknown" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

// Contributors lists the sash maintainers shown by `sash about`.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the project's source repository.
func RepoURL() string {
	return "https://github.com/bnema/sash"
}
