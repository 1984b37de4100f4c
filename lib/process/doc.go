// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the two process-level concerns of the
// uptodate binary: reporting a fatal error before the structured logger
// exists, and running the external programs the publish pipeline
// delegates to (scp, shasum, b3sum).
//
// [Run] resolves the binary on PATH, captures stdout and stderr
// separately, and folds stderr into the returned error so a failed scp
// reports why it failed rather than just "exit status 1". Programs run
// in their own process group, and when the context is cancelled or the
// optional timeout expires the whole group is killed.
//
// [Command.Interactive] opts out of the separate group. scp forks ssh,
// and ssh asks the operator to confirm unknown host keys or type a
// password on /dev/tty; only the terminal's foreground process group
// may read it. Cancelling an interactive command kills scp, and ssh
// exits once its pipes to scp close.
package process
