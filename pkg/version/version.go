// Package version reports the build version, set at link time with
// -ldflags "-X github.com/rshade/recordgrid/pkg/version.version=v1.2.3".
package version

//nolint:gochecknoglobals // Set by the linker.
var version = "dev"

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	return version
}
