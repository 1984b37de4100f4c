// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package testutil

import "testing"

// RunInTerminal needs the Linux devpts interface; elsewhere the test
// is skipped.
func RunInTerminal(t *testing.T, testName, input string) string {
	t.Helper()
	t.Skip("pseudo-terminal tests require Linux devpts")
	return ""
}
