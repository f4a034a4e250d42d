package main

import (
	"os"
	"runtime/debug"

	"github.com/jokarl/checkmap/internal/cli"
)

// Version information (set via ldflags during build, or read from build info)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		version, commit, date = versionFromBuildInfo(info, version, commit, date)
	}

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// versionFromBuildInfo fills in values that were not set via ldflags.
// The module version is present when installed with `go install module@version`,
// the VCS settings when built from a checkout.
func versionFromBuildInfo(info *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit != "none" {
		return version, commit, date
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			date = setting.Value
		}
	}
	return version, commit, date
}
