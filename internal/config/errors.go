// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [BuildConfig.Validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMode indicates a missing or unsupported build mode.
	ErrInvalidMode = errors.New("invalid mode configuration")
	// ErrInvalidPathsConfig indicates an empty application, template or
	// output path.
	ErrInvalidPathsConfig = errors.New("invalid paths configuration")
	// ErrInvalidServerConfig indicates an empty host or a port outside
	// 1..65535.
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFile indicates a config file whose extension is
	// neither .json nor .yaml/.yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
