package version

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables injected via -ldflags.
// Version is the edjb release of this binary.
var (
	Version = "v0.7.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash. When the binary was built
// without -ldflags it falls back to the VCS revision recorded by the
// Go toolchain.
func GetCommit() string {
	if Commit != "none" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return Commit
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GetCommit(), Date)
}
