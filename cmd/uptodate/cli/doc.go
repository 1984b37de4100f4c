// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for uptodate.
//
// The central type is [Command]: a name, help text, a [pflag.FlagSet]
// factory, and a Run function. [Command.Execute] parses flags, handles
// -h/--help, and suggests the closest flag name (Levenshtein distance
// of at most 3) when the operator mistypes one.
//
// Flags are declared as struct tags on a params struct and bound with
// [FlagsFromParams]. Embedding [OutputFormat] adds --format (text,
// json, yaml) and the [OutputFormat.Emit] helper.
//
// [ExitError] carries a non-zero exit code for failures whose message
// the command already printed, and [NewCommandLogger] builds the slog
// logger every command writes its diagnostics to (stderr only; stdout
// is reserved for the report).
package cli
