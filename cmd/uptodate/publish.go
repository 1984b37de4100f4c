// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/stewpkg/uptodate/cmd/uptodate/cli"
	"github.com/stewpkg/uptodate/lib/checksum"
	"github.com/stewpkg/uptodate/lib/publish"
	"github.com/stewpkg/uptodate/lib/stewconfig"
	"github.com/stewpkg/uptodate/lib/transfer"
	"github.com/stewpkg/uptodate/lib/version"
)

type publishParams struct {
	cli.OutputFormat
	ConfigPath string        `flag:"config" desc:"stew config store (default $HOME/.stew_config)"`
	Algorithm  string        `flag:"algorithm" default:"sha1" desc:"checksum algorithm: sha1, sha256, or blake3"`
	Threshold  int64         `flag:"threshold" default:"209715200" desc:"artifact size in bytes from which the external checksum program is used"`
	Timeout    time.Duration `flag:"timeout" desc:"time limit for each external program (scp, shasum); 0 means none"`
	DryRun     bool          `flag:"dry-run" desc:"resolve settings and compute the checksum without uploading"`
	Verbose    bool          `flag:"verbose,v" desc:"log debug detail to stderr"`
	Version    bool          `flag:"version" desc:"print version information and exit"`
}

func publishCommand(ctx context.Context, stdout io.Writer) *cli.Command {
	var params publishParams
	return &cli.Command{
		Name:    "uptodate",
		Summary: "Publish a package to the stew server and print its checksum",
		Description: `Publish a package to the stew server and print its checksum.

Copies the package with scp to login@webserver:path from ~/.stew_config,
then prints "<package name> <checksum>" for the package index.`,
		Usage: "uptodate [flags] /path/to/package",
		Examples: []cli.Example{
			{
				Description: "Publish a package",
				Command:     "uptodate dist/demo-1.4.2.pkg",
			},
			{
				Description: "Check settings and checksum without uploading",
				Command:     "uptodate --dry-run --format=json dist/demo-1.4.2.pkg",
			},
			{
				Description: "Bound scp and shasum to ten minutes each",
				Command:     "uptodate --timeout=10m dist/big-image.pkg",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("uptodate", &params)
		},
		Run: func(args []string) error {
			return runPublish(ctx, stdout, &params, args)
		},
	}
}

func runPublish(ctx context.Context, stdout io.Writer, params *publishParams, args []string) error {
	if params.Version {
		if params.Verbose {
			fmt.Fprintf(stdout, "uptodate %s\n", version.Full())
		} else {
			fmt.Fprintf(stdout, "uptodate %s\n", version.Info())
		}
		return nil
	}

	if err := params.Validate(); err != nil {
		return err
	}
	algorithm, err := checksum.ParseAlgorithm(params.Algorithm)
	if err != nil {
		return err
	}
	if params.Threshold <= 0 {
		return fmt.Errorf("--threshold must be positive, got %d", params.Threshold)
	}
	if params.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative, got %s", params.Timeout)
	}

	configPath := params.ConfigPath
	if configPath == "" {
		configPath, err = stewconfig.DefaultPath()
		if err != nil {
			return err
		}
	}

	logger := cli.NewCommandLogger(params.Verbose).With("command", "publish")

	knownHostsPath, err := transfer.DefaultKnownHostsPath()
	if err != nil {
		logger.Debug("skipping known_hosts preflight", "error", err)
		knownHostsPath = ""
	}

	publisher, err := publish.New(publish.Options{
		ConfigPath: configPath,
		Stdout:     stdout,
		Logger:     logger,
		NewUploader: func(settings publish.Settings) publish.Uploader {
			return &transfer.Client{
				Port:           settings.Port,
				Identity:       settings.Identity,
				Timeout:        params.Timeout,
				KnownHostsPath: knownHostsPath,
				Logger:         logger,
			}
		},
		Checksummer: checksum.NewEngine(algorithm,
			checksum.WithThreshold(params.Threshold),
			checksum.WithCommandTimeout(params.Timeout),
			checksum.WithLogger(logger),
		),
		DryRun: params.DryRun,
	})
	if err != nil {
		return err
	}

	report, err := publisher.Run(ctx, args)
	if errors.Is(err, publish.ErrNotConfigured) || errors.Is(err, publish.ErrUsage) {
		return &cli.ExitError{Code: 1}
	}
	if err != nil {
		return err
	}

	return params.Emit(stdout, report, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, report.Line())
		return err
	})
}
