// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// OutputFormat is an embeddable struct that adds --format to a
// command's params struct.
//
//	type publishParams struct {
//	    cli.OutputFormat
//	    DryRun bool `flag:"dry-run" desc:"skip the upload"`
//	}
//
//	// In Run:
//	return params.Emit(os.Stdout, report, func(w io.Writer) error {
//	    _, err := fmt.Fprintln(w, report.Line())
//	    return err
//	})
type OutputFormat struct {
	Format string `flag:"format,o" default:"text" desc:"output format: text, json, or yaml"`
}

// Validate rejects unknown formats. Commands call it before doing any
// work so a typo does not waste an upload.
func (o *OutputFormat) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", o.Format)
	}
}

// Emit writes value to w in the selected format. text renders the
// human-readable form and is only called for the text format.
func (o *OutputFormat) Emit(w io.Writer, value any, text func(io.Writer) error) error {
	switch o.Format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText, "":
		return text(w)
	default:
		return o.Validate()
	}
}
