// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-bundle-config/models"

// Default values used when no other source sets a field.
const (
	DefaultAppPath  = "src"
	DefaultHTMLPath = "src/index.html"
	DefaultDistPath = "dist"
	DefaultHost     = "localhost"
	DefaultPort     = 3000
	DefaultDevTool  = "cheap-module-eval-source-map"
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *BuildConfig {
	cache := true

	return &BuildConfig{
		Mode: models.ModeDevelopment,
		Paths: Paths{
			AppPath:  DefaultAppPath,
			HTMLPath: DefaultHTMLPath,
			DistPath: DefaultDistPath,
		},
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Cache:   &cache,
		DevTool: DefaultDevTool,
	}
}
