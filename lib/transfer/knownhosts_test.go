// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/stewpkg/uptodate/lib/testutil"
)

func testHostKey(t *testing.T) ssh.PublicKey {
	t.Helper()
	public, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	key, err := ssh.NewPublicKey(public)
	if err != nil {
		t.Fatalf("converting key: %v", err)
	}
	return key
}

func TestHostKnown(t *testing.T) {
	key := testHostKey(t)
	keyText := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(key)))

	lines := []string{
		"# operator known hosts",
		knownhosts.Line([]string{"pkg.example.com"}, key),
		knownhosts.Line([]string{"pkg.example.com:2222"}, key),
		knownhosts.HashHostname("hashed.example.com") + " " + keyText,
		"*.mirror.example.com,!bad.mirror.example.com " + keyText,
		"@revoked revoked.example.com " + keyText,
		"",
	}
	path := testutil.WriteFile(t, t.TempDir(), "known_hosts", []byte(strings.Join(lines, "\n")))

	tests := []struct {
		name     string
		host     string
		port     string
		expected bool
	}{
		{"plain default port", "pkg.example.com", "", true},
		{"plain explicit 22", "pkg.example.com", "22", true},
		{"plain custom port", "pkg.example.com", "2222", true},
		{"plain other port", "pkg.example.com", "2200", false},
		{"hashed", "hashed.example.com", "", true},
		{"wildcard", "eu.mirror.example.com", "", true},
		{"negated", "bad.mirror.example.com", "", false},
		{"revoked", "revoked.example.com", "", false},
		{"unknown", "other.example.com", "", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			known, err := HostKnown(path, test.host, test.port)
			if err != nil {
				t.Fatalf("HostKnown: %v", err)
			}
			if known != test.expected {
				t.Errorf("HostKnown(%q, %q) = %v, want %v", test.host, test.port, known, test.expected)
			}
		})
	}
}

func TestHostKnownMissingFile(t *testing.T) {
	known, err := HostKnown(filepath.Join(t.TempDir(), "known_hosts"), "pkg.example.com", "")
	if err != nil {
		t.Fatalf("HostKnown: %v", err)
	}
	if known {
		t.Error("no host should be known without a known_hosts file")
	}
}

func TestHostKnownMalformed(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "known_hosts", []byte("pkg.example.com ssh-ed25519\n"))
	if _, err := HostKnown(path, "pkg.example.com", ""); err == nil {
		t.Error("HostKnown should fail on a malformed entry")
	}
}
