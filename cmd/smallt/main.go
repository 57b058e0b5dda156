// Package main provides the CLI entry point for smallt.
package main

import (
	"os"
	"runtime/debug"

	"github.com/worksonmyai/smallt/internal/cmd"
)

// version is set via ldflags at build time; commit and date come from
// the module build info when available.
var version = "dev"

func main() {
	commit, date := buildMetadata()
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildMetadata extracts the VCS revision and timestamp embedded by the
// Go toolchain.
func buildMetadata() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", "unknown"
	}
	return metadataFromSettings(info.Settings)
}

func metadataFromSettings(settings []debug.BuildSetting) (string, string) {
	var revision, date string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			date = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	commit := "unknown"
	if len(revision) >= 7 {
		commit = revision[:7]
		if dirty {
			commit += "-dirty"
		}
	}
	if date == "" {
		date = "unknown"
	}
	return commit, date
}
