// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownMode is returned when a string does not name a supported [Mode].
var ErrUnknownMode = errors.New("unknown build mode")

// Mode selects which overlay is applied on top of the common bundler
// configuration. The zero value means "not set" and is only valid while
// configuration layers are still being merged.
type Mode string

const (
	// ModeDevelopment enables hot reloading and keeps output readable.
	ModeDevelopment Mode = "development"

	// ModeProduction enables minification, content hashing and bundle splitting.
	ModeProduction Mode = "production"
)

// Modes lists every supported mode in a stable order.
var Modes = []Mode{ModeDevelopment, ModeProduction}

// ParseMode converts s into a [Mode], returning [ErrUnknownMode] for anything
// other than "development" or "production".
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}

	return m, nil
}

// IsValid reports whether m is one of the supported modes.
func (m Mode) IsValid() bool {
	return slices.Contains(Modes, m)
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// Globals returns the development and production flags exposed to the
// bundled application. Exactly one of them is true for a valid mode.
func (m Mode) Globals() (development, production bool) {
	return m == ModeDevelopment, m == ModeProduction
}

// UnmarshalText implements encoding.TextUnmarshaler so that modes can be
// read from environment variables, JSON and YAML configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = ""
		return nil
	}

	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
