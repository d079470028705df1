// Package version holds build information for the codesearch client.
package version

import "runtime/debug"

// Set at build time:
// go build -ldflags "-X codesearch/internal/version.Version=0.4.0 -X codesearch/internal/version.Commit=abc123"
var (
	Version   = "0.4.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			if BuildDate == "unknown" {
				BuildDate = s.Value
			}
		}
	}
}

// Info returns the version with an abbreviated commit, if known.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns the multi-line output of `codesearch version`.
func Full() string {
	return "codesearch " + Version + "\n" +
		"commit: " + Commit + "\n" +
		"built:  " + BuildDate
}
