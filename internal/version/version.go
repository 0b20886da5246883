package version

import "fmt"

var (
	// Version is the semantic version of the binary. Overridden via -ldflags "-X".
	Version = "0.1.0"
	// Commit is the git commit hash injected at build time.
	Commit = "dev"
)

// Full returns a human-friendly version string.
func Full() string {
	return fmt.Sprintf("reviewbot %s (commit:%s)", Version, Commit)
}
