// Package version holds the build version string.
package version

// Version is the current release version. Overridden at build time via
// -ldflags "-X github.com/jigargosar/ingrid/pkg/version.Version=...".
var Version = "0.3.0"
