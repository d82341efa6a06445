// Package version identifies the running build. The commit comes from an
// -ldflags override when set, otherwise from the module's embedded VCS
// metadata, otherwise "dev".
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "showforge"

// commitOverride is injected with -ldflags for container builds that strip
// the .git directory.
var commitOverride string

// GitCommit is the short commit hash of this build, or "dev".
var GitCommit = resolveCommit()

// Full returns "showforge/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
