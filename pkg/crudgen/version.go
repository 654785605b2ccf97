package crudgen

import (
	"fmt"
	"runtime"
	"strings"
)

// Version of the generator. The output format of a release never changes
// within a minor version.
const Version = "0.3.0"

// Set with -ldflags "-X github.com/eleven-am/crudgen/pkg/crudgen.gitCommit=..."
var (
	gitCommit string
	buildDate string
)

// SetBuildInfo overrides the build metadata reported by FullVersionInfo.
func SetBuildInfo(commit, date string) {
	gitCommit = commit
	buildDate = date
}

// VersionInfo returns a one line version string
func VersionInfo() string {
	return fmt.Sprintf("crudgen %s", Version)
}

// FullVersionInfo returns detailed version information
func FullVersionInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "crudgen %s\n", Version)
	fmt.Fprintf(&b, "Go Version: %s\n", runtime.Version())

	if gitCommit != "" {
		fmt.Fprintf(&b, "Git Commit: %s\n", gitCommit)
	}
	if buildDate != "" {
		fmt.Fprintf(&b, "Build Date: %s\n", buildDate)
	}

	return b.String()
}
