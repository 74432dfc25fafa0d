package build

import "runtime"

// Build-time variables, populated via ldflags.
var (
	ReleaseVersion = "dev"
	GitCommit      = "unknown"
	BuildTime      = "unknown"
)

// GoVersion is the version of the Go toolchain the binary was built with.
var GoVersion = runtime.Version()
