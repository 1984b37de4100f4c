// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the uptodate
// binary.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//	go build -ldflags "-X github.com/stewpkg/uptodate/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// They default to "unknown" / "0.1.0-dev" in development builds and
// test runs. [Info] is the --version line; [Full] adds the Go version
// and platform.
package version
