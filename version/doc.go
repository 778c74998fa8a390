// Package version reports the build version of gwkit programs.
//
// Version, commit, branch and build time are set at link time and
// completed from the module's embedded VCS build settings:
//
//	go build -ldflags "-X github.com/kbukum/gwkit/version.Version=1.0.0" ./cmd/gwutil
package version
