package buildinfo

import "fmt"

// Set at release time with -ldflags "-X github.com/aalvaropc/skyfare/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("skyfare %s (commit=%s, date=%s)", Version, Commit, Date)
}
