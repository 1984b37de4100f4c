// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/stewpkg/uptodate/lib/process"
)

// Digester produces the lowercase hex digest of the file at path.
type Digester interface {
	Digest(ctx context.Context, path string) (string, error)
}

// MemoryDigester reads the entire file into memory and hashes it.
type MemoryDigester struct {
	Algorithm Algorithm
}

// Digest implements [Digester].
func (d MemoryDigester) Digest(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for hashing: %w", path, err)
	}
	hasher := d.Algorithm.New()
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// CommandDigester runs an external checksum program on the file and
// returns the first whitespace-delimited token of its stdout.
type CommandDigester struct {
	Algorithm Algorithm

	// Binary overrides the program from [Algorithm.Command]. When set,
	// Args replaces the default leading arguments too.
	Binary string
	Args   []string

	// Timeout bounds the program's run time. Zero means no limit.
	Timeout time.Duration
}

// Digest implements [Digester].
func (d CommandDigester) Digest(ctx context.Context, path string) (string, error) {
	binary, args := d.Algorithm.Command()
	if d.Binary != "" {
		binary, args = d.Binary, d.Args
	}

	output, err := process.Run(ctx, process.Command{
		Binary:  binary,
		Args:    append(append([]string{}, args...), path),
		Timeout: d.Timeout,
	})
	if err != nil {
		return "", err
	}

	fields := strings.Fields(output)
	if len(fields) == 0 {
		return "", fmt.Errorf("%s printed no digest for %s", binary, path)
	}
	// shasum prefixes the line with "\" when it escapes a backslash or
	// newline in the file name.
	digest, err := d.Algorithm.ParseDigest(strings.TrimPrefix(fields[0], `\`))
	if err != nil {
		return "", fmt.Errorf("%s output for %s: %w", binary, path, err)
	}
	return digest, nil
}
