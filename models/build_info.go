// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds plain value types shared between packages.
package models

import "strings"

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD, e.g.
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildCommit=$(git rev-parse HEAD)"
//
// and shown in the TUI build-info window.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]; blank values become [NotAvailable].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string {
	return orNotAvailable(b.version)
}

// Date returns the build timestamp string.
func (b BuildInfo) Date() string {
	return orNotAvailable(b.date)
}

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string {
	return orNotAvailable(b.commit)
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
