// Package build provides build-time information for the CLI application.
// Version is read from VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// These can be overridden via ldflags, e.g.
// -X github.com/tacogips/setupguide/internal/build.version=x.y.z
var (
	version   string
	gitCommit string
	buildDate string
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// GitCommit returns the commit the binary was built from, or "unknown".
func GitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	return "unknown"
}

// BuildDate returns the build timestamp, or "unknown".
func BuildDate() string {
	if buildDate != "" {
		return buildDate
	}
	return "unknown"
}
