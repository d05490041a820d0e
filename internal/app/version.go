package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/ecomind-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported at startup, by /health and by
// ecomindctl --version. Builds without ldflags fall back to the VCS stamp the
// Go toolchain embeds.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func formatVersion(version, commit, built string, info func() (*debug.BuildInfo, bool)) string {
	if commit == "unknown" || built == "unknown" {
		if bi, ok := info(); ok {
			for _, s := range bi.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "unknown":
					commit = s.Value
				case s.Key == "vcs.time" && built == "unknown":
					built = s.Value
				case s.Key == "vcs.modified" && s.Value == "true":
					version += "+dirty"
				}
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
