// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package process

import "os/exec"

// configureProcess is a no-op where process groups are unavailable;
// cancellation falls back to killing the direct child only.
func configureProcess(cmd *exec.Cmd, interactive bool) {}
