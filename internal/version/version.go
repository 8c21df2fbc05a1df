// Package version holds the release string printed by --version.
package version

// Version is overridden at link time with -ldflags "-X enigma/internal/version.Version=...".
var Version = "0.3.0"
