package version

// Version information for navmatch
var (
	// Version is the current semantic version
	Version = "0.1.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// FullInfo returns detailed version information
func FullInfo() string {
	return "navmatch " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
