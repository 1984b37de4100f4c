// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/stewpkg/uptodate/lib/process"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		// The not-configured and usage paths print their own message
		// and return an error carrying the exit code. Don't print a
		// redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return publishCommand(ctx, stdout).Execute(args)
}
