// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DefaultKnownHostsPath returns ~/.ssh/known_hosts.
func DefaultKnownHostsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "known_hosts"), nil
}

// HostKnown reports whether the known_hosts file at knownHostsPath has
// an entry for host on port (empty port means 22). Plain, wildcard,
// negated, and hashed ("|1|salt|hash") host patterns are understood;
// @revoked entries never count. A missing file means no host is known.
func HostKnown(knownHostsPath, host, port string) (bool, error) {
	data, err := os.ReadFile(knownHostsPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", knownHostsPath, err)
	}

	if port == "" {
		port = "22"
	}
	address := knownhosts.Normalize(net.JoinHostPort(host, port))

	rest := data
	for {
		var marker string
		var hosts []string
		marker, hosts, _, _, rest, err = ssh.ParseKnownHosts(rest)
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("parsing %s: %w", knownHostsPath, err)
		}
		if marker == "revoked" {
			continue
		}
		if matchHosts(hosts, address) {
			return true, nil
		}
	}
}

// matchHosts applies one entry's comma-separated patterns to address.
// A matching negated pattern vetoes the whole entry.
func matchHosts(patterns []string, address string) bool {
	matched := false
	for _, pattern := range patterns {
		negated := strings.HasPrefix(pattern, "!")
		pattern = strings.TrimPrefix(pattern, "!")
		if !matchPattern(pattern, address) {
			continue
		}
		if negated {
			return false
		}
		matched = true
	}
	return matched
}

func matchPattern(pattern, address string) bool {
	if strings.HasPrefix(pattern, "|") {
		return matchHashedHost(pattern, address)
	}
	if pattern == address {
		return true
	}
	if strings.ContainsAny(pattern, "*?") {
		matched, err := path.Match(pattern, address)
		return err == nil && matched
	}
	return false
}

// matchHashedHost hashes address with the entry's salt and compares.
// Malformed or unsupported entries never match.
func matchHashedHost(pattern, address string) bool {
	components := strings.Split(pattern, "|")
	if len(components) != 4 || components[1] != "1" {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(components[2])
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(components[3])
	if err != nil {
		return false
	}

	mac := hmac.New(sha1.New, salt)
	mac.Write([]byte(address))
	return bytes.Equal(mac.Sum(nil), expected)
}
