// Package buildinfo exposes version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/sn/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the version line printed by "sn version".
func String() string {
	return fmt.Sprintf("sn %s (commit %s, built %s)", Version, Commit, Date)
}
