// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package stewconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stewpkg/uptodate/lib/testutil"
)

const exampleStore = `webserver=pkg.example.com
path=/srv/pkgs
login=deploy
`

func writeStore(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), FileName, []byte(content))
}

func TestResolveExampleStore(t *testing.T) {
	path := writeStore(t, exampleStore)

	tests := []struct {
		key      string
		expected string
	}{
		{KeyWebserver, "pkg.example.com"},
		{KeyPath, "/srv/pkgs"},
		{KeyLogin, "deploy"},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			value, ok, err := Resolve(path, test.key)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !ok {
				t.Fatalf("Resolve(%q) reported key absent", test.key)
			}
			if value != test.expected {
				t.Errorf("Resolve(%q) = %q, want %q", test.key, value, test.expected)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	path := writeStore(t, exampleStore)

	first, _, err := Resolve(path, KeyWebserver)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, _, err := Resolve(path, KeyWebserver)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Errorf("Resolve not idempotent: %q != %q", first, second)
	}
}

func TestLoadParsing(t *testing.T) {
	content := "# stew config\n" +
		"\n" +
		"webpath=/wrong\n" +
		"path=/srv/pkgs  \t\n" +
		"  login = deploy\n" +
		"note=a=b=c\n" +
		"just some text\n" +
		"path=/second\n" +
		"empty=\n"
	store, err := Load(writeStore(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name     string
		key      string
		expected string
		present  bool
	}{
		{"exact match ignores longer key containing it", KeyPath, "/srv/pkgs", true},
		{"longer key still addressable", "webpath", "/wrong", true},
		{"key and value trimmed", KeyLogin, "deploy", true},
		{"value split on first equals only", "note", "a=b=c", true},
		{"empty value is present", "empty", "", true},
		{"absent key", KeyWebserver, "", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, ok := store.Lookup(test.key)
			if ok != test.present {
				t.Fatalf("Lookup(%q) present = %v, want %v", test.key, ok, test.present)
			}
			if value != test.expected {
				t.Errorf("Lookup(%q) = %q, want %q", test.key, value, test.expected)
			}
		})
	}
}

func TestLoadLongLines(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	content := "# " + long + "\n" +
		"banner=" + long + "\n" +
		exampleStore
	store, err := Load(writeStore(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := store.Get(KeyWebserver); got != "pkg.example.com" {
		t.Errorf("webserver = %q, want %q", got, "pkg.example.com")
	}
	if got := store.Get("banner"); got != long {
		t.Errorf("banner has length %d, want %d", len(got), len(long))
	}
}

func TestLoadWithoutTrailingNewline(t *testing.T) {
	store, err := Load(writeStore(t, "webserver=pkg.example.com\nlogin=deploy"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := store.Get(KeyLogin); got != "deploy" {
		t.Errorf("login = %q, want %q", got, "deploy")
	}
}

func TestRequire(t *testing.T) {
	store, err := Load(writeStore(t, "login=deploy\nport=\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	value, err := store.Require(KeyLogin)
	if err != nil {
		t.Fatalf("Require(login): %v", err)
	}
	if value != "deploy" {
		t.Errorf("Require(login) = %q, want %q", value, "deploy")
	}

	if _, err := store.Require(KeyWebserver); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Require(webserver) error = %v, want ErrKeyNotFound", err)
	}
	if _, err := store.Require(KeyPort); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("Require(port) error = %v, want ErrEmptyValue", err)
	}
	if got := store.Get(KeyWebserver); got != "" {
		t.Errorf("Get(webserver) = %q, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	if _, err := Load(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
	if Exists(path) {
		t.Error("Exists should be false for a missing file")
	}
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(home, FileName); path != want {
		t.Errorf("DefaultPath = %q, want %q", path, want)
	}
}
