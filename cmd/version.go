// Package cmd holds dotconf build metadata set via ldflags.
package cmd

// Overridden with -ldflags "-X github.com/thoreinstein/dotconf/cmd.Version=...".
var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
