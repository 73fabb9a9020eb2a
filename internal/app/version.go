package app

import "fmt"

const appName = "learning-log"

// Version, Commit and BuildTime are set with -ldflags "-X" at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in startup logs and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
