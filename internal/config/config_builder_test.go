// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfigFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfigFile(t, "config.json", data)
}

func boolPtr(v bool) *bool {
	return &v
}

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without layers fails
// validation instead of returning a half-empty config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.ErrorIs(t, err, ErrInvalidPathsConfig)
	assert.ErrorIs(t, err, ErrInvalidServerConfig)
}

// TestBuild_DefaultsOnly verifies that the defaults layer alone is valid.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, models.ModeDevelopment, cfg.Mode)
	assert.Equal(t, DefaultAppPath, cfg.Paths.AppPath)
	assert.Equal(t, DefaultHTMLPath, cfg.Paths.HTMLPath)
	assert.Equal(t, DefaultDistPath, cfg.Paths.DistPath)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultDevTool, cfg.DevTool)
	assert.True(t, cfg.CacheEnabled())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that non-zero fields of later layers
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&BuildConfig{Paths: Paths{AppPath: "/first/app.js"}, DevTool: "eval"},
		&BuildConfig{Paths: Paths{AppPath: "/second/app.js"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/second/app.js", cfg.Paths.AppPath)
	assert.Equal(t, "eval", cfg.DevTool)
	assert.Equal(t, DefaultDistPath, cfg.Paths.DistPath)
}

// TestBuild_ExplicitFalseCacheOverridesDefault verifies that an explicit
// false in a later layer turns the cache off.
func TestBuild_ExplicitFalseCacheOverridesDefault(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &BuildConfig{Cache: boolPtr(false)})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.CacheEnabled())
}

// TestBuild_UnsetCacheKeepsEarlierValue verifies that a nil cache pointer
// does not reset an earlier layer.
func TestBuild_UnsetCacheKeepsEarlierValue(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &BuildConfig{DevTool: "source-map"})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.True(t, cfg.CacheEnabled())
}

// TestBuild_DoesNotMutateDefaults verifies that merging does not write
// through the defaults' cache pointer.
func TestBuild_DoesNotMutateDefaults(t *testing.T) {
	defaults := Defaults()
	b := newConfigBuilder()
	b.configs = append(b.configs, defaults, &BuildConfig{Cache: boolPtr(false)})

	_, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, defaults.Cache)
	assert.True(t, *defaults.Cache)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	setEnvVars(t, map[string]string{})
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NODE_ENV": "production",
		"APP_PATH": "/env/app.js",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, models.ModeProduction, b.configs[0].Mode)
	assert.Equal(t, "/env/app.js", b.configs[0].Paths.AppPath)
}

// TestWithEnv_SetsErrorOnUnknownMode verifies that a bad NODE_ENV is
// recorded and no layer is appended.
func TestWithEnv_SetsErrorOnUnknownMode(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "qa"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilFlagSetIsNoOp verifies that a nil flag set adds nothing.
func TestWithFlags_NilFlagSetIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithFlags_AppendsChangedFlags verifies that only explicitly set flags
// end up in the appended layer.
func TestWithFlags_AppendsChangedFlags(t *testing.T) {
	fs := newTestFlagSet(t, "--mode", "production", "--port", "4000")

	b := newConfigBuilder()
	b.withFlags(fs)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, models.ModeProduction, b.configs[0].Mode)
	assert.Equal(t, 4000, b.configs[0].Server.Port)
	assert.Empty(t, b.configs[0].Server.Host)
	assert.Nil(t, b.configs[0].Cache)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no layer names a config file.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &BuildConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid JSON file
// is parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := FileConfig{Mode: "production", DevTool: "source-map"}
	payload.Paths.App = "/json/app.js"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &BuildConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, models.ModeProduction, b.configs[1].Mode)
	assert.Equal(t, "/json/app.js", b.configs[1].Paths.AppPath)
	assert.Equal(t, "source-map", b.configs[1].DevTool)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &BuildConfig{
		ConfigFilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple layers name a file,
// the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	payload := FileConfig{DevTool: "last-wins"}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&BuildConfig{ConfigFilePath: "/nonexistent/first.json"},
		&BuildConfig{ConfigFilePath: path},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].DevTool)
}

// ── GetBuildConfig ────────────────────────────────────────────────────────────

// TestGetBuildConfig_Precedence verifies defaults < env < flags < file.
func TestGetBuildConfig_Precedence(t *testing.T) {
	filePath := writeTempConfigFile(t, "config.yaml", []byte("devtool: from-file\n"))
	setEnvVars(t, map[string]string{
		"APP_PATH":    "/env/app.js",
		"DIST_PATH":   "/env/dist",
		"DEVTOOL":     "from-env",
		"SERVER_HOST": "127.0.0.1",
	})
	fs := newTestFlagSet(t,
		"--dist-path", "/flag/dist",
		"--devtool", "from-flag",
		"--config", filePath,
	)

	cfg, err := GetBuildConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "/env/app.js", cfg.Paths.AppPath)
	assert.Equal(t, "/flag/dist", cfg.Paths.DistPath)
	assert.Equal(t, "from-file", cfg.DevTool)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultHTMLPath, cfg.Paths.HTMLPath)
	assert.Equal(t, filePath, cfg.ConfigFilePath)
}

// TestGetBuildConfig_InvalidFileMode verifies that errors from the file
// layer are surfaced.
func TestGetBuildConfig_InvalidFileMode(t *testing.T) {
	setEnvVars(t, map[string]string{})
	filePath := writeTempConfigFile(t, "config.yaml", []byte("mode: test\n"))

	cfg, err := GetBuildConfig(newTestFlagSet(t, "-c", filePath))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownMode)
}
