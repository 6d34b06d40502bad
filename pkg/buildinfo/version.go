// Package buildinfo carries the version stamped into trieviz builds.
//
// The variables are set with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/trieviz/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/trieviz/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/trieviz
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the abbreviated git commit.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns a one-line description such as "dev (none, built unknown)".
// The preview page prints it in its footer.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\n", String())
}
