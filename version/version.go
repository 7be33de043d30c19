// Package version provides the exprvar version.
package version

const version = "v0.1.0"

// revision is set by -ldflags "-X github.com/scenarigo/exprvar/version.revision=<sha>".
var revision = ""

// String returns the version string.
func String() string {
	if revision != "" {
		return version + "-" + revision
	}
	return version
}
