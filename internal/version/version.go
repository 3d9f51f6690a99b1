// Package version provides build and version information for SaiScope.
package version

import "runtime"

// Version and Commit can be overridden at build time using:
//
//	go build -ldflags "-X github.com/AaronLay10/SaiScope/internal/version.Version=x.y.z -X github.com/AaronLay10/SaiScope/internal/version.Commit=abc123"
var (
	Version = "0.3.0"
	Commit  = "dev"
)

// String renders "saiscope <version> (<commit>, <go version>)".
func String() string {
	return "saiscope " + Version + " (" + Commit + ", " + runtime.Version() + ")"
}
