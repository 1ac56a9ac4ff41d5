// Package misc keeps build information.
package misc

import (
	"github.com/blang/semver"
)

// Set by the linker.
var (
	version = "0.1.0"
	githash = "development"
)

// GetVersion returns program version string.
func GetVersion() string {
	return version
}

// GetGitHash returns commit program was built from.
func GetGitHash() string {
	return githash
}

// GetSemVersion returns parsed program version, zero version if linker supplied garbage.
func GetSemVersion() semver.Version {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}
	}
	return v
}
