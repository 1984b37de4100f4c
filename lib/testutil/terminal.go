// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "os"

// terminalEnv marks a test binary started by [RunInTerminal].
const terminalEnv = "UPTODATE_TEST_IN_TERMINAL"

// InTerminal reports whether the current test binary was started by
// [RunInTerminal]. Tests that only make sense on a terminal skip
// themselves otherwise.
func InTerminal() bool {
	return os.Getenv(terminalEnv) == "1"
}
