// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// DefaultThreshold is the file size, in bytes, at which [Engine] stops
// hashing in memory and switches to the external program: 200 MiB.
const DefaultThreshold int64 = 200 * 1048576

// Method records which strategy produced a digest.
type Method string

const (
	MethodMemory  Method = "memory"
	MethodCommand Method = "command"
)

// Result is a computed artifact digest.
type Result struct {
	Digest    string    `json:"checksum" yaml:"checksum"`
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Method    Method    `json:"method" yaml:"method"`
	Size      int64     `json:"size" yaml:"size"`
}

// Engine selects a [Digester] by file size.
type Engine struct {
	// Algorithm is reported in results. It should match the algorithm
	// both digesters were built with.
	Algorithm Algorithm

	// Threshold is the smallest size hashed by External. Zero means
	// [DefaultThreshold].
	Threshold int64

	Memory   Digester
	External Digester

	// Logger receives a debug line per checksum. Nil discards.
	Logger *slog.Logger
}

// NewEngine returns an Engine for algorithm with the default threshold
// and the two standard digesters.
func NewEngine(algorithm Algorithm, options ...Option) *Engine {
	engine := &Engine{
		Algorithm: algorithm,
		Threshold: DefaultThreshold,
		Memory:    MemoryDigester{Algorithm: algorithm},
	}
	external := CommandDigester{Algorithm: algorithm}
	for _, option := range options {
		option(engine, &external)
	}
	if engine.External == nil {
		engine.External = external
	}
	return engine
}

// Option configures [NewEngine].
type Option func(*Engine, *CommandDigester)

// WithThreshold sets the memory/external cutoff in bytes.
func WithThreshold(threshold int64) Option {
	return func(engine *Engine, _ *CommandDigester) {
		engine.Threshold = threshold
	}
}

// WithCommandTimeout bounds the external checksum program's run time.
func WithCommandTimeout(timeout time.Duration) Option {
	return func(_ *Engine, external *CommandDigester) {
		external.Timeout = timeout
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(engine *Engine, _ *CommandDigester) {
		engine.Logger = logger
	}
}

// Select returns the digester and method for a file of the given size.
func (e *Engine) Select(size int64) (Digester, Method) {
	threshold := e.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if size < threshold {
		return e.Memory, MethodMemory
	}
	return e.External, MethodCommand
}

// Checksum digests the file at path with the strategy its size selects.
func (e *Engine) Checksum(ctx context.Context, path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("checksum: %w", err)
	}
	if !info.Mode().IsRegular() {
		return Result{}, fmt.Errorf("checksum: %s is not a regular file", path)
	}

	digester, method := e.Select(info.Size())
	if e.Logger != nil {
		e.Logger.Debug("computing checksum",
			"path", path,
			"size", info.Size(),
			"algorithm", e.Algorithm,
			"method", method,
		)
	}

	digest, err := digester.Digest(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("checksum: %w", err)
	}
	return Result{
		Digest:    digest,
		Algorithm: e.Algorithm,
		Method:    method,
		Size:      info.Size(),
	}, nil
}
