// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Uptodate publishes a built package to the stew distribution server
// and prints the line the package index records for it:
//
//	$ uptodate dist/demo-1.4.2.pkg
//	demo-1.4.2.pkg 3f786850e387550fdab836ed7e6dc881de23001b
//
// Remote settings come from ~/.stew_config (created by "stew -c"):
// webserver, path, and login are required; port and identity are
// optional and passed to scp as -P and -i. The artifact is copied with
// scp to login@webserver:path, then checksummed. Artifacts under the
// --threshold size (200 MiB by default) are hashed in memory; larger
// ones are hashed by shasum (or b3sum for --algorithm=blake3).
//
// A failed upload is an error and no index line is printed. Logs go to
// stderr; stdout carries only the report (text, JSON, or YAML per
// --format) or the setup and usage messages.
//
// Exit status is 0 on success and 1 otherwise.
package main
