package main

import (
	"runtime/debug"

	"github.com/dami/hope/cmd"
)

// Version is injected at release time via -ldflags "-X main.Version=...".
var Version = "dev"

// effectiveVersion falls back to Go build info when no version was injected,
// so `go install ...@vX.Y.Z` builds still report something useful.
func effectiveVersion(v string) string {
	if v != "" && v != "dev" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return "devel+" + rev
		}
	}
	return v
}

func main() {
	cmd.SetVersion(effectiveVersion(Version))
	cmd.Execute()
}
