// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrBinaryNotFound is returned (wrapped) by [FindBinary] and [Run]
// when the requested program is not on PATH.
var ErrBinaryNotFound = errors.New("binary not found")

// Command describes one external program invocation.
type Command struct {
	// Binary is the program name, resolved via PATH, or an absolute path.
	Binary string

	// Args are passed to the program after the binary name.
	Args []string

	// Stdin is connected to the program's standard input. Nil means
	// the null device.
	Stdin io.Reader

	// Timeout bounds the program's run time. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration

	// Interactive keeps the program in the caller's process group so
	// it can read the controlling terminal (ssh host-key and password
	// prompts). Cancellation then kills only the direct child.
	Interactive bool
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Binary
	}
	return c.Binary + " " + strings.Join(c.Args, " ")
}

// FindBinary resolves a program name to an absolute path via PATH.
// Names containing a slash are checked directly.
func FindBinary(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w on PATH", name, ErrBinaryNotFound)
	}
	return path, nil
}

// Run executes command and returns its stdout. Stderr is captured and
// included in the error on failure. A non-zero exit, a missing binary,
// and a timeout are all errors.
func Run(ctx context.Context, command Command) (string, error) {
	binaryPath, err := FindBinary(command.Binary)
	if err != nil {
		return "", err
	}

	if command.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, command.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, command.Args...)
	cmd.Stdin = command.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	configureProcess(cmd, command.Interactive)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s: %w", command, ctxErr)
		}
		return "", formatError(command, &stderr, err)
	}
	return stdout.String(), nil
}

// formatError produces an error for a failed command, preferring the
// program's own stderr over the generic exec error. The exec error is
// still wrapped so callers can inspect *exec.ExitError.
func formatError(command Command, stderr *bytes.Buffer, err error) error {
	stderrText := strings.TrimSpace(stderr.String())
	if stderrText != "" {
		return fmt.Errorf("%s: %w (stderr: %s)", command, err, stderrText)
	}
	return fmt.Errorf("%s: %w", command, err)
}
