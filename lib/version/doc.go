// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the catalog
// binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// These default to "unknown" / "0.1.0-dev" when not injected, which
// occurs during development builds and test runs.
//
//	go build -ldflags "-X github.com/catalog-foundation/catalog/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// [Info] and [Full] format the values for --version and the version
// command; [Current] returns them as a struct for JSON output.
package version
