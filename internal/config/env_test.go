// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildConfigEnvKeys = []string{
	"CONFIG",
	"NODE_ENV",
	"APP_PATH",
	"HTML_PATH",
	"DIST_PATH",
	"SERVER_HOST",
	"SERVER_PORT",
	"CACHE",
	"DEVTOOL",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":      "/path/to/config.yaml",
		"NODE_ENV":    "production",
		"APP_PATH":    "/src/app.js",
		"HTML_PATH":   "/src/index.html",
		"DIST_PATH":   "/dist",
		"SERVER_HOST": "127.0.0.1",
		"SERVER_PORT": "8080",
		"CACHE":       "false",
		"DEVTOOL":     "source-map",
	})

	// Act
	cfg := &BuildConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, models.ModeProduction, cfg.Mode)
	assert.Equal(t, "/src/app.js", cfg.Paths.AppPath)
	assert.Equal(t, "/src/index.html", cfg.Paths.HTMLPath)
	assert.Equal(t, "/dist", cfg.Paths.DistPath)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.NotNil(t, cfg.Cache)
	assert.False(t, *cfg.Cache)
	assert.Equal(t, "source-map", cfg.DevTool)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_PATH":    "/src/app.js",
		"SERVER_PORT": "4000",
	})

	cfg := &BuildConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/src/app.js", cfg.Paths.AppPath)
	assert.Equal(t, 4000, cfg.Server.Port)

	assert.Empty(t, cfg.Mode)
	assert.Empty(t, cfg.Paths.HTMLPath)
	assert.Empty(t, cfg.Server.Host)
	assert.Nil(t, cfg.Cache)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg := &BuildConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &BuildConfig{}, cfg)
}

func TestParseEnv_UnknownMode(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "staging"})

	cfg := &BuildConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidPort(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_PORT": "not-a-port"})

	cfg := &BuildConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

// setEnvVars clears every build config variable and sets vars. Original
// values are restored when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range buildConfigEnvKeys {
		// t.Setenv registers the restore; Unsetenv makes the key absent
		// rather than empty.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
