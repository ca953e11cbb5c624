package version

import "fmt"

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/tagdoc/internal/version.Version=v0.3.0".
var Version = "unknown"

// Build metadata, set the same way as Version.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version line printed by --version.
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("tagdoc %s", Version)
	}
	return fmt.Sprintf("tagdoc %s (%s, built %s)", Version, GitCommit, BuildTime)
}
