// Package version reports how the running binary was built
package version

import "runtime/debug"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go,omitempty"`
}

// Set via -ldflags "-X 'chrozone/internal/core/version.version=v0.2.0'
// -X 'chrozone/internal/core/version.commit=abcd' -X 'chrozone/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information; ldflags win, the embedded VCS stamp fills the gaps
func Info() BuildInfo {
	out := BuildInfo{Service: "chrozone", Version: version, Commit: commit, Date: date}

	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return out
	}
	out.Go = bi.GoVersion
	if out.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		out.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if out.Commit == "none" {
				out.Commit = s.Value
			}
		case "vcs.time":
			if out.Date == "unknown" {
				out.Date = s.Value
			}
		}
	}
	return out
}
