package version

import (
	"fmt"
	"strings"
)

// Version is set at build time via ldflags
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// GetVersion returns the version without the leading 'v'
func GetVersion() string {
	return strings.TrimPrefix(Version, "v")
}

// String is the one line printed by --version
func String() string {
	if GitCommit == "unknown" {
		return GetVersion()
	}
	return fmt.Sprintf("%s (commit %s, built %s)", GetVersion(), GitCommit, BuildTime)
}
