// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/stewpkg/uptodate/lib/process"
)

// DefaultBinary is the remote-copy program.
const DefaultBinary = "scp"

// Client uploads artifacts with scp.
type Client struct {
	// Binary is the copy program. Empty means [DefaultBinary].
	Binary string

	// Port is passed as "-P port" when set.
	Port string

	// Identity is a private key file passed as "-i identity" when set.
	Identity string

	// Timeout bounds a single upload. Zero means no limit.
	Timeout time.Duration

	// KnownHostsPath enables the known_hosts preflight when set.
	KnownHostsPath string

	// Logger receives preflight warnings and upload progress. Nil
	// discards.
	Logger *slog.Logger
}

// Args returns the copy program's arguments for an upload. Options end
// at "--", and a relative artifact path is anchored with "./" so scp
// reads neither "rel:1.pkg" as a remote host nor "-x.pkg" as an option.
func (c *Client) Args(artifactPath string, destination Destination) []string {
	var args []string
	if c.Port != "" {
		args = append(args, "-P", c.Port)
	}
	if c.Identity != "" {
		args = append(args, "-i", c.Identity)
	}
	return append(args, "--", localOperand(artifactPath), destination.String())
}

func localOperand(path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return path
	}
	return "./" + path
}

// Upload copies the artifact to destination. It returns an error when
// the copy program is missing, exits non-zero, or exceeds Timeout.
func (c *Client) Upload(ctx context.Context, artifactPath string, destination Destination) error {
	if err := destination.Validate(); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}

	logger := c.logger().With("destination", destination.String())
	c.preflight(logger, destination.Host)

	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	start := time.Now()
	logger.Info("uploading artifact", "artifact", artifactPath)
	_, err := process.Run(ctx, process.Command{
		Binary:      binary,
		Args:        c.Args(artifactPath, destination),
		Timeout:     c.Timeout,
		Interactive: true,
	})
	if err != nil {
		return fmt.Errorf("transfer: uploading %s to %s: %w", artifactPath, destination, err)
	}
	logger.Info("upload complete", "duration", time.Since(start))
	return nil
}

func (c *Client) preflight(logger *slog.Logger, host string) {
	if c.KnownHostsPath == "" {
		return
	}
	known, err := HostKnown(c.KnownHostsPath, host, c.Port)
	if err != nil {
		logger.Warn("could not read known_hosts", "path", c.KnownHostsPath, "error", err)
		return
	}
	if !known {
		logger.Warn("host is not in known_hosts; scp may prompt to confirm its key",
			"host", host, "path", c.KnownHostsPath)
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
