// Package misc provides build identification helpers used by the CLI and
// logging setup.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "cssel"

// GetAppName returns the program name used in logs, file names and the CLI.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValues(func() (string, string) {
	version, hash := "unknown", "unknown"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return version, hash
	}
	if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			hash = s.Value[:12]
		}
	}
	return version, hash
})

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	v, _ := buildInfo()
	return v
}

// GetGitHash returns the short VCS revision recorded in build info.
func GetGitHash() string {
	_, h := buildInfo()
	return h
}
