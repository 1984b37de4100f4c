// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package publish sequences one artifact publish: check that the stew
// config store exists, check the argument count, resolve the remote
// settings, upload the artifact, checksum it, and hand back a [Report]
// whose [Report.Line] is the "<basename> <digest>" line recorded in
// the package index.
//
// The two precondition failures print their operator-facing message
// to the publisher's stdout and return [ErrNotConfigured] or
// [ErrUsage]; the caller only has to map those to exit status 1. Every
// other failure is returned as a labeled error. A failed upload stops
// the run before the checksum, so a report is only produced for an
// artifact that actually reached the server (or for a dry run).
package publish
