// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"errors"
	"fmt"
)

// Destination is where an artifact is copied: login@host:path.
type Destination struct {
	Login string `json:"login" yaml:"login"`
	Host  string `json:"host" yaml:"host"`
	Path  string `json:"path" yaml:"path"`
}

// String renders the scp target form.
func (d Destination) String() string {
	return fmt.Sprintf("%s@%s:%s", d.Login, d.Host, d.Path)
}

// Validate checks that every component is set.
func (d Destination) Validate() error {
	var missing []error
	if d.Login == "" {
		missing = append(missing, errors.New("login is empty"))
	}
	if d.Host == "" {
		missing = append(missing, errors.New("host is empty"))
	}
	if d.Path == "" {
		missing = append(missing, errors.New("path is empty"))
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid destination %q: %w", d, errors.Join(missing...))
	}
	return nil
}
