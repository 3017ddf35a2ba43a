// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"net"
	"strconv"

	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/spf13/pflag"
)

// BuildConfig is the settings record that drives bundler configuration
// assembly. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type BuildConfig struct {
	// Mode selects the development or production overlay.
	// Env: NODE_ENV
	Mode models.Mode `env:"NODE_ENV"`

	// Paths holds the filesystem locations of the application sources,
	// the HTML template and the output directory.
	Paths Paths

	// Server holds the host and port the bundles are served from. They
	// form the public base URL of every emitted asset.
	Server Server `envPrefix:"SERVER_"`

	// Cache toggles the bundler's module cache. A pointer so that an
	// explicit false in a later layer overrides an earlier true.
	// Env: CACHE
	Cache *bool `env:"CACHE"`

	// DevTool is the source map mode (e.g. "source-map",
	// "cheap-module-eval-source-map"). Empty disables source maps.
	// Env: DEVTOOL
	DevTool string `env:"DEVTOOL"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file merged on top of all other sources.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Paths groups filesystem locations used by the assembled configuration.
type Paths struct {
	// AppPath is the application's root module; also restricts script and
	// style rules to application sources.
	// Env: APP_PATH
	AppPath string `env:"APP_PATH"`

	// HTMLPath is the HTML shell template.
	// Env: HTML_PATH
	HTMLPath string `env:"HTML_PATH"`

	// DistPath is the directory bundles are written to.
	// Env: DIST_PATH
	DistPath string `env:"DIST_PATH"`
}

// Server holds the address bundles are served from.
type Server struct {
	// Host is the server host name or IP.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the server TCP port.
	// Env: SERVER_PORT
	Port int `env:"PORT"`
}

// Address returns the server address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// PublicURL returns the base URL emitted assets are referenced by.
func (s Server) PublicURL() string {
	return "http://" + s.Address() + "/"
}

// Globals returns the development and production flags derived from Mode.
func (cfg *BuildConfig) Globals() (development, production bool) {
	return cfg.Mode.Globals()
}

// Env returns the environment-mode string as a JSON string literal, the way
// it is substituted into bundled code.
func (cfg *BuildConfig) Env() string {
	quoted, _ := json.Marshal(cfg.Mode.String())
	return string(quoted)
}

// CacheEnabled reports whether the module cache is on. Unset means off.
func (cfg *BuildConfig) CacheEnabled() bool {
	return cfg.Cache != nil && *cfg.Cache
}

// GetBuildConfig loads, merges, and validates the build configuration from
// all available sources in the following priority order (later non-zero
// values win):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered with [RegisterFlags] on fs (skipped when nil)
//  4. JSON or YAML file (path resolved from sources 2 and 3)
func GetBuildConfig(fs *pflag.FlagSet) (*BuildConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
