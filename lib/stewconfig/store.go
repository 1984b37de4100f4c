// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package stewconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the store's name inside the operator's home directory.
const FileName = ".stew_config"

// Well-known keys.
const (
	KeyWebserver = "webserver"
	KeyPath      = "path"
	KeyLogin     = "login"
	KeyPort      = "port"
	KeyIdentity  = "identity"
)

var (
	// ErrKeyNotFound means no line in the store defines the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyValue means the key is defined with an empty value.
	ErrEmptyValue = errors.New("key has an empty value")
)

// Store is a parsed configuration store.
type Store struct {
	path   string
	values map[string]string
}

// DefaultPath returns the store location for the current user,
// $HOME/.stew_config.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load parses the store at path.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close()

	store := &Store{path: path, values: make(map[string]string)}
	// Lines have no length limit.
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		store.addLine(line)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return store, nil
}

// addLine records a "key=value" line. Blank lines, comments, lines
// without "=", and keys already seen are ignored.
func (s *Store) addLine(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, exists := s.values[key]; exists {
		return
	}
	s.values[key] = strings.TrimSpace(value)
}

// Resolve loads the store at path and looks up key. It is the one-shot
// form of [Load] followed by [Store.Lookup].
func Resolve(path, key string) (string, bool, error) {
	store, err := Load(path)
	if err != nil {
		return "", false, err
	}
	value, ok := store.Lookup(key)
	return value, ok, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the value for key and whether the key is defined.
func (s *Store) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Get returns the value for key, or "" when it is not defined.
func (s *Store) Get(key string) string {
	return s.values[key]
}

// Require returns the value for key, failing when the key is absent or
// its value is empty.
func (s *Store) Require(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%q in %s: %w", key, s.path, ErrKeyNotFound)
	}
	if value == "" {
		return "", fmt.Errorf("%q in %s: %w", key, s.path, ErrEmptyValue)
	}
	return value, nil
}

// Exists reports whether a store file is present at path. Errors other
// than "does not exist" (permission problems, for instance) count as
// present so that [Load] reports them with context.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
