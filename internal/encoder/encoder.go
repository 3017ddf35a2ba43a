// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bundle-config/models"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatJS}

// ParseFormat converts s into a [Format]. An empty string selects JSON and
// "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	case string(FormatJS):
		return FormatJS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatJS:
		return "text/javascript; charset=utf-8"
	default:
		return "application/json"
	}
}

// Extension returns the conventional file extension, with the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode renders cfg in format f.
func Encode(cfg models.BundlerConfiguration, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return encodeJSON(cfg)
	case FormatYAML:
		return encodeYAML(cfg)
	case FormatJS:
		return encodeJS(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func encodeJSON(cfg models.BundlerConfiguration) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("error encoding json: %w", err)
	}

	return buf.Bytes(), nil
}

func encodeYAML(cfg models.BundlerConfiguration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}
