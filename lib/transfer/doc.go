// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package transfer copies a package artifact to the distribution
// server with scp. The copy protocol itself is scp's business; this
// package builds the command line, runs it through lib/process, and
// turns a failed copy into an error that names the destination and
// carries scp's stderr.
//
// A [Destination] is the "login@host:path" triple from the operator's
// stew config. [Client.Upload] runs
//
//	scp [-P port] [-i identity] -- <artifact> <login>@<host>:<path>
//
// Before the copy, [Client] checks ~/.ssh/known_hosts for the host
// (see [HostKnown]). An unknown host only produces a warning: scp will
// still run and ask the operator to confirm the key, but the log line
// explains why the tool is waiting. scp runs as an interactive
// [process.Command] so ssh can read that answer, or a password, from
// the terminal.
package transfer
