// ============================================================================
// mathsex - Exakte Brueche und Zahlentheorie
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the mathsex packages
const (
	// Module version
	Module = "0.2.0"

	// Package versions
	Numberx   = "0.2.0"
	Fractionx = "0.2.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// PackageVersion returns the version for a given package name
func PackageVersion(name string) string {
	switch name {
	case "numberx":
		return Numberx
	case "fractionx":
		return Fractionx
	default:
		return Module
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Module,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("mathsex %s (%s, %s) %s %s/%s", i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}
