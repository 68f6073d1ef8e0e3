// Package version holds build metadata, set with -ldflags "-X".
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
