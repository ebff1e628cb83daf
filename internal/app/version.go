package app

import "fmt"

// Build metadata, overridden with -ldflags "-X github.com/Karan-Chaurasia/AI-Dictionary/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health and logged when the server starts.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
