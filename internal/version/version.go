package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// BeaconVersion is set at build time via
// -ldflags "-X 'github.com/kd2vcb/pico-aprs-beacon/internal/version.BeaconVersion=X'".
var BeaconVersion string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}
	return defaultValue
}

// Banner returns a one-line (or, if verbose, multi-line) build identity
// string for the startup log.
func Banner(verbose bool) string {
	buildInfo, _ := debug.ReadBuildInfo()

	buildTime := getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")
	commit := getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
	dirtyStr := getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")

	if dirty, err := strconv.ParseBool(dirtyStr); err == nil && dirty {
		commit += "-dirty"
	}

	version := BeaconVersion
	if version == "" {
		version = "unknown"
	}

	line := fmt.Sprintf("pico-aprs-beacon %s (revision %s, built %s)", version, commit, buildTime)
	if verbose && buildInfo != nil {
		line += fmt.Sprintf("\n%+v", buildInfo)
	}
	return line
}
