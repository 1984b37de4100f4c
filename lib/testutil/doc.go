// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for uptodate packages.
//
// The publish pipeline shells out to scp and shasum. Tests do not talk
// to real servers; instead [FakeBinary] writes a small shell script
// under a test-owned directory and [PrependPath] puts that directory
// first on PATH for the duration of the test. [WriteFile] is the
// fixture writer used for config stores and artifacts.
//
// ssh prompts on the controlling terminal, which a test binary started
// by go test usually lacks. [RunInTerminal] re-runs a single test inside
// a fresh pseudo-terminal, and that test checks [InTerminal] to skip
// itself in the ordinary run.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no uptodate-internal dependencies.
package testutil
