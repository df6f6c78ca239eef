// In file: internal/version/version.go

// Package version centralizes build metadata and the component versions that
// feed into content hashes.
//
// Catalog listings are served with an ETag built from the catalog content plus
// the component versions below. Bumping a version invalidates every ETag a
// client holds even when the hashed content is unchanged, for example after a
// change to how prompts are composed from the same templates.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/dileep-u-k/toolhub/internal/version.Version=1.0.0
//	  -X github.com/dileep-u-k/toolhub/internal/version.Commit=abc123
//	  -X github.com/dileep-u-k/toolhub/internal/version.Date=2026-01-01"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// ComponentVersions holds the version strings for the logical parts of the service.
// Increment one by hand before deploying a change to that component.
var ComponentVersions = struct {
	// Catalog changes whenever the built-in tool definitions change.
	Catalog string
	// PromptLogic changes whenever the way a template and input are combined changes.
	PromptLogic string
}{
	Catalog:     "v1.0",
	PromptLogic: "v1.0",
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns the build metadata of the running binary.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Info returns a one-line, human-readable version string.
func Info(name string) string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s)",
		name, Version, short(Commit), Date, GetBuildInfo().Platform)
}

// ETag returns a quoted entity tag for payload.
//
// Example output: "\"catalog-1a2b3c4d5e6f7a8b-cv1.0_pv1.0\""
func ETag(prefix string, payload []byte) string {
	sum := sha256.Sum256(payload)
	versionString := fmt.Sprintf("c%s_p%s",
		ComponentVersions.Catalog,
		ComponentVersions.PromptLogic,
	)
	return fmt.Sprintf("%q", fmt.Sprintf("%s-%s-%s", prefix, hex.EncodeToString(sum[:8]), versionString))
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
