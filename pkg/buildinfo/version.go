// Package buildinfo holds the version stamped into gridda binaries.
//
// The variables are set with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/gridda/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/gridda/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/gridda/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/gridda
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Creator is the producer string written into rendered documents, e.g.
// "gridda v0.3.0".
func Creator() string {
	return "gridda " + Version
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
