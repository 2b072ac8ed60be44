// Package version reports build metadata injected at link time.
package version

import "fmt"

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the human readable version line.
func String() string {
	return fmt.Sprintf("jobtrack dev (commit: %s, built: %s)", ShortCommit(), BuildTime)
}

// ShortCommit returns the first seven characters of the commit hash.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
