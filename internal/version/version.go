// Package version carries build identification stamped into analysis
// reports so a run can be traced back to the engine that produced it.
package version

var (
	// Version is the current engine version, overridden at build time.
	Version = "dev"
	// GitSHA is the git commit SHA of the build.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)
