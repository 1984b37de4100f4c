// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stewpkg/uptodate/lib/stewconfig"
	"github.com/stewpkg/uptodate/lib/transfer"
)

// Settings are the remote parameters resolved from the config store.
type Settings struct {
	Destination transfer.Destination

	// Port and Identity are optional; empty means scp's default.
	Port     string
	Identity string
}

// ResolveSettings loads the store at configPath and resolves the
// required webserver, path, and login keys plus the optional port and
// identity keys.
func ResolveSettings(configPath string) (Settings, error) {
	store, err := stewconfig.Load(configPath)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}

	var settings Settings
	required := []struct {
		key    string
		target *string
	}{
		{stewconfig.KeyWebserver, &settings.Destination.Host},
		{stewconfig.KeyPath, &settings.Destination.Path},
		{stewconfig.KeyLogin, &settings.Destination.Login},
	}
	for _, entry := range required {
		value, err := store.Require(entry.key)
		if err != nil {
			return Settings{}, fmt.Errorf("config: %w", err)
		}
		*entry.target = value
	}

	settings.Port = store.Get(stewconfig.KeyPort)
	if settings.Port != "" {
		number, err := strconv.Atoi(settings.Port)
		if err != nil || number < 1 || number > 65535 {
			return Settings{}, fmt.Errorf("config: %q in %s: %q is not a TCP port",
				stewconfig.KeyPort, configPath, settings.Port)
		}
	}

	settings.Identity, err = expandHome(store.Get(stewconfig.KeyIdentity))
	if err != nil {
		return Settings{}, fmt.Errorf("config: %q in %s: %w", stewconfig.KeyIdentity, configPath, err)
	}
	return settings, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}
