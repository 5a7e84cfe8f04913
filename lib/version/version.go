package version

import "regexp"

// Pre-built binaries will have version set correctly during build time.
var Version = "v0.1.0-HEAD"

var semver = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)

// OnlyNumbers returns the x.y.z part of Version, or "" if it has none.
func OnlyNumbers() string {
	return semver.FindString(Version)
}

// Creator names the program in exported documents.
func Creator() string {
	if n := OnlyNumbers(); n != "" {
		return "shapedit " + n
	}
	return "shapedit"
}
