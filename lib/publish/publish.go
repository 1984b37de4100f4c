// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/stewpkg/uptodate/lib/checksum"
	"github.com/stewpkg/uptodate/lib/stewconfig"
	"github.com/stewpkg/uptodate/lib/transfer"
)

var (
	// ErrNotConfigured means the config store does not exist. The
	// setup instruction has already been written to stdout.
	ErrNotConfigured = errors.New("stew environment not configured")

	// ErrUsage means the argument count was wrong. The usage line has
	// already been written to stdout.
	ErrUsage = errors.New("expected exactly one package path")
)

const (
	notConfiguredMessage = "Your stew environment has not been configured.\n" +
		"Please run stew -c to create a config file."
	usageMessage = "Usage: uptodate /path/to/package"
)

// Uploader copies an artifact to a destination.
type Uploader interface {
	Upload(ctx context.Context, artifactPath string, destination transfer.Destination) error
}

// Checksummer digests an artifact.
type Checksummer interface {
	Checksum(ctx context.Context, path string) (checksum.Result, error)
}

// Options configure a [Publisher].
type Options struct {
	// ConfigPath is the stew config store. Required.
	ConfigPath string

	// Stdout receives the precondition messages. Nil means os.Stdout.
	Stdout io.Writer

	// Logger receives progress logs. Nil discards.
	Logger *slog.Logger

	// NewUploader builds the uploader once settings are resolved, so
	// that the store's port and identity reach scp. Nil means a plain
	// [transfer.Client].
	NewUploader func(Settings) Uploader

	// Checksummer digests the artifact. Nil means a SHA-1
	// [checksum.Engine] with the default threshold.
	Checksummer Checksummer

	// DryRun resolves settings and computes the checksum without
	// uploading.
	DryRun bool
}

// Publisher runs the publish pipeline.
type Publisher struct {
	configPath  string
	stdout      io.Writer
	logger      *slog.Logger
	newUploader func(Settings) Uploader
	checksummer Checksummer
	dryRun      bool
}

// New returns a Publisher for options.
func New(options Options) (*Publisher, error) {
	if options.ConfigPath == "" {
		return nil, errors.New("publish: config path is required")
	}
	publisher := &Publisher{
		configPath:  options.ConfigPath,
		stdout:      options.Stdout,
		logger:      options.Logger,
		newUploader: options.NewUploader,
		checksummer: options.Checksummer,
		dryRun:      options.DryRun,
	}
	if publisher.stdout == nil {
		publisher.stdout = os.Stdout
	}
	if publisher.logger == nil {
		publisher.logger = slog.New(slog.DiscardHandler)
	}
	if publisher.newUploader == nil {
		logger := publisher.logger
		publisher.newUploader = func(settings Settings) Uploader {
			return &transfer.Client{Port: settings.Port, Identity: settings.Identity, Logger: logger}
		}
	}
	if publisher.checksummer == nil {
		publisher.checksummer = checksum.NewEngine(checksum.SHA1, checksum.WithLogger(publisher.logger))
	}
	return publisher, nil
}

// Report describes a completed publish.
type Report struct {
	// Artifact is the artifact's base name.
	Artifact string `json:"artifact" yaml:"artifact"`

	checksum.Result `yaml:",inline"`

	Destination string `json:"destination" yaml:"destination"`
	Uploaded    bool   `json:"uploaded" yaml:"uploaded"`
}

// Line is the package index line: "<basename> <digest>".
func (r *Report) Line() string {
	return r.Artifact + " " + r.Digest
}

// Run publishes the artifact named by the single element of args.
func (p *Publisher) Run(ctx context.Context, args []string) (*Report, error) {
	if !stewconfig.Exists(p.configPath) {
		fmt.Fprintln(p.stdout, notConfiguredMessage)
		return nil, fmt.Errorf("%w: %s does not exist", ErrNotConfigured, p.configPath)
	}
	if len(args) != 1 {
		fmt.Fprintln(p.stdout, usageMessage)
		return nil, fmt.Errorf("%w, got %d", ErrUsage, len(args))
	}
	artifactPath := args[0]

	settings, err := ResolveSettings(p.configPath)
	if err != nil {
		return nil, err
	}
	if err := checkArtifact(artifactPath); err != nil {
		return nil, err
	}

	logger := p.logger.With("artifact", artifactPath, "destination", settings.Destination.String())

	uploaded := false
	if p.dryRun {
		logger.Info("dry run, skipping upload")
	} else {
		if err := p.newUploader(settings).Upload(ctx, artifactPath, settings.Destination); err != nil {
			return nil, err
		}
		uploaded = true
	}

	result, err := p.checksummer.Checksum(ctx, artifactPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("published", "checksum", result.Digest, "method", result.Method)

	return &Report{
		Artifact:    filepath.Base(artifactPath),
		Result:      result,
		Destination: settings.Destination.String(),
		Uploaded:    uploaded,
	}, nil
}

// checkArtifact verifies the artifact is a readable regular file
// before anything is sent anywhere.
func checkArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("artifact: %s is not a regular file", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	return file.Close()
}
