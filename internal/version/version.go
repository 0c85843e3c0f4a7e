// Package version carries the build information stamped in at release time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/svgset/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/svgset/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/svgset/internal/version.Date={{.Date}}
)

// String describes the running build on one line
func String() string {
	return fmt.Sprintf("svgset %s (commit %s, built %s)", Version, Commit, Date)
}
