// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FakeBinary writes an executable /bin/sh script named name into
// directory and returns its absolute path. body is everything after
// the shebang line.
//
//	testutil.FakeBinary(t, binDir, "scp", `echo "$@" > "$SCP_LOG"`)
func FakeBinary(t *testing.T, directory, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fakes require a POSIX shell")
	}

	path := filepath.Join(directory, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake %s: %v", name, err)
	}
	return path
}

// PrependPath puts directory at the front of PATH until the test ends.
func PrependPath(t *testing.T, directory string) {
	t.Helper()
	t.Setenv("PATH", directory+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// WriteFile creates a file with the given content under directory and
// returns its path.
func WriteFile(t *testing.T, directory, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
