// Package version exposes build metadata for the tesseract CLI, stamped at
// build time via ldflags:
//
//	go build -ldflags "-X github.com/tesseractdb/go-tesseract/version.Version=v0.1.0"
package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags; the defaults identify an untagged development build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

// Info bundles build and runtime metadata for display and JSON output.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get snapshots the build metadata together with the running toolchain info.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line build description.
func (i Info) String() string {
	return fmt.Sprintf("tesseract %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
