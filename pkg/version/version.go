// Package version exposes the build version, injected at link time.
package version

// Version is overridden by the linker in release builds:
//
//	go build -ldflags "-X github.com/ecobuddy/ecobuddy/pkg/version.Version=v1.2.3"
var Version = "dev"

// GetVersion returns the current build version.
func GetVersion() string {
	return Version
}
