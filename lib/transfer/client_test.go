// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stewpkg/uptodate/lib/process"
	"github.com/stewpkg/uptodate/lib/testutil"
)

// fakeSCP copies the second-to-last argument to the path part of the
// last argument (after the first ":") and logs its arguments.
const fakeSCP = `echo "$@" >> "$SCP_LOG"
for argument; do source=$target; target=$argument; done
cp "$source" "${target#*:}"`

func setupFakeSCP(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	testutil.FakeBinary(t, binDir, "scp", fakeSCP)
	testutil.PrependPath(t, binDir)
	logPath := filepath.Join(t.TempDir(), "scp.log")
	t.Setenv("SCP_LOG", logPath)
	return logPath
}

func TestClientArgs(t *testing.T) {
	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: "/srv/pkgs"}
	tests := []struct {
		name     string
		client   Client
		artifact string
		expected string
	}{
		{"plain", Client{}, "pkg.tar", "-- ./pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"port", Client{Port: "2222"}, "pkg.tar", "-P 2222 -- ./pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"port and identity", Client{Port: "2222", Identity: "/keys/id_ed25519"}, "pkg.tar",
			"-P 2222 -i /keys/id_ed25519 -- ./pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"absolute", Client{}, "/build/pkg.tar", "-- /build/pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"already relative", Client{}, "./pkg.tar", "-- ./pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"parent directory", Client{}, "../pkg.tar", "-- ../pkg.tar deploy@pkg.example.com:/srv/pkgs"},
		{"colon in name", Client{}, "rel:1.pkg", "-- ./rel:1.pkg deploy@pkg.example.com:/srv/pkgs"},
		{"leading dash", Client{}, "-x.pkg", "-- ./-x.pkg deploy@pkg.example.com:/srv/pkgs"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := strings.Join(test.client.Args(test.artifact, destination), " ")
			if got != test.expected {
				t.Errorf("Args = %q, want %q", got, test.expected)
			}
		})
	}
}

func TestUploadCopiesArtifact(t *testing.T) {
	logPath := setupFakeSCP(t)
	artifact := testutil.WriteFile(t, t.TempDir(), "demo.pkg", []byte("package bytes"))
	remote := t.TempDir()

	client := &Client{Port: "2222"}
	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: remote}
	if err := client.Upload(context.Background(), artifact, destination); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(remote, "demo.pkg"))
	if err != nil {
		t.Fatalf("reading uploaded artifact: %v", err)
	}
	if string(copied) != "package bytes" {
		t.Errorf("uploaded content = %q, want %q", copied, "package bytes")
	}

	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading scp log: %v", err)
	}
	want := "-P 2222 -- " + artifact + " deploy@pkg.example.com:" + remote + "\n"
	if string(logged) != want {
		t.Errorf("scp args = %q, want %q", logged, want)
	}
}

func TestUploadColonInRelativeName(t *testing.T) {
	logPath := setupFakeSCP(t)
	t.Chdir(t.TempDir())
	testutil.WriteFile(t, ".", "rel:1.pkg", []byte("release one"))
	remote := t.TempDir()

	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: remote}
	if err := (&Client{}).Upload(context.Background(), "rel:1.pkg", destination); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(remote, "rel:1.pkg"))
	if err != nil {
		t.Fatalf("reading uploaded artifact: %v", err)
	}
	if string(copied) != "release one" {
		t.Errorf("uploaded content = %q, want %q", copied, "release one")
	}
	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading scp log: %v", err)
	}
	if want := "-- ./rel:1.pkg deploy@pkg.example.com:" + remote + "\n"; string(logged) != want {
		t.Errorf("scp args = %q, want %q", logged, want)
	}
}

// promptingSCP asks to confirm the host key on the terminal, as scp
// does for a host missing from known_hosts, then copies like fakeSCP.
const promptingSCP = `printf 'Are you sure you want to continue connecting (yes/no)? ' > /dev/tty
read answer < /dev/tty
if [ "$answer" != yes ]; then echo "Host key verification failed." >&2; exit 1; fi
` + fakeSCP

func TestUploadAnswersHostKeyPrompt(t *testing.T) {
	output := testutil.RunInTerminal(t, "TestUploadInTerminal", "yes\n")
	if !strings.Contains(output, "--- PASS: TestUploadInTerminal") {
		t.Errorf("terminal test did not pass:\n%s", output)
	}
}

func TestUploadInTerminal(t *testing.T) {
	if !testutil.InTerminal() {
		t.Skip("started by TestUploadAnswersHostKeyPrompt")
	}
	binDir := t.TempDir()
	testutil.FakeBinary(t, binDir, "scp", promptingSCP)
	testutil.PrependPath(t, binDir)
	t.Setenv("SCP_LOG", filepath.Join(t.TempDir(), "scp.log"))

	artifact := testutil.WriteFile(t, t.TempDir(), "demo.pkg", []byte("package bytes"))
	remote := t.TempDir()
	client := &Client{Timeout: 10 * time.Second}
	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: remote}
	if err := client.Upload(context.Background(), artifact, destination); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := os.Stat(filepath.Join(remote, "demo.pkg")); err != nil {
		t.Errorf("artifact not uploaded: %v", err)
	}
}

func TestUploadFailureIsReported(t *testing.T) {
	binDir := t.TempDir()
	testutil.FakeBinary(t, binDir, "scp", `echo "Permission denied (publickey)." >&2; exit 1`)
	testutil.PrependPath(t, binDir)

	artifact := testutil.WriteFile(t, t.TempDir(), "demo.pkg", nil)
	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: "/srv/pkgs"}
	err := (&Client{}).Upload(context.Background(), artifact, destination)
	if err == nil {
		t.Fatal("Upload should fail when scp exits non-zero")
	}
	for _, fragment := range []string{"transfer:", "deploy@pkg.example.com:/srv/pkgs", "Permission denied"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q should contain %q", err, fragment)
		}
	}
}

func TestUploadMissingBinary(t *testing.T) {
	artifact := testutil.WriteFile(t, t.TempDir(), "demo.pkg", nil)
	client := &Client{Binary: "scp-that-does-not-exist"}
	destination := Destination{Login: "deploy", Host: "pkg.example.com", Path: "/srv/pkgs"}

	err := client.Upload(context.Background(), artifact, destination)
	if !errors.Is(err, process.ErrBinaryNotFound) {
		t.Errorf("Upload error = %v, want ErrBinaryNotFound", err)
	}
}

func TestUploadRejectsIncompleteDestination(t *testing.T) {
	logPath := setupFakeSCP(t)
	artifact := testutil.WriteFile(t, t.TempDir(), "demo.pkg", nil)

	err := (&Client{}).Upload(context.Background(), artifact, Destination{Host: "pkg.example.com"})
	if err == nil {
		t.Fatal("Upload should fail for an incomplete destination")
	}
	if _, statErr := os.Stat(logPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("scp should not run for an incomplete destination")
	}
}
