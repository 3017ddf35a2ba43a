// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func testBuildConfig() config.BuildConfig {
	cfg := *config.Defaults()
	cfg.Paths = config.Paths{
		AppPath:  "/src/app.js",
		HTMLPath: "/src/index.html",
		DistPath: "/dist",
	}
	return cfg
}

func newTestConfigService(cfg config.BuildConfig) ConfigService {
	a := assembler.NewAssembler(logger.Nop(), lipgloss.NewRenderer(io.Discard))
	return NewConfigService(cfg, a, logger.Nop())
}

// ─────────────────────────────────────────────
// Assemble
// ─────────────────────────────────────────────

func TestConfigService_Assemble_EmptyModeUsesConfigMode(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	bundle, err := svc.Assemble(context.Background(), "")

	require.NoError(t, err)
	app, _ := bundle.Entry.Get(assembler.EntryApp)
	assert.Len(t, app, 3)
}

func TestConfigService_Assemble_ExplicitMode(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	bundle, err := svc.Assemble(context.Background(), models.ModeProduction)

	require.NoError(t, err)
	assert.Equal(t, "[id].[chunkhash].js", bundle.Output.ChunkFilename)
}

func TestConfigService_Assemble_InvalidBuildConfig(t *testing.T) {
	cfg := testBuildConfig()
	cfg.Paths.HTMLPath = ""
	svc := newTestConfigService(cfg)

	_, err := svc.Assemble(context.Background(), models.ModeDevelopment)

	require.Error(t, err)
	assert.ErrorIs(t, err, assembler.ErrInvalidBuildConfig)
	assert.ErrorIs(t, err, config.ErrInvalidPathsConfig)
}

// ─────────────────────────────────────────────
// Render
// ─────────────────────────────────────────────

func TestConfigService_Render_JSON(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	data, err := svc.Render(context.Background(), models.ModeDevelopment, encoder.FormatJSON)

	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "web", doc["target"])
}

func TestConfigService_Render_UnknownFormat(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	data, err := svc.Render(context.Background(), models.ModeDevelopment, "xml")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, encoder.ErrUnknownFormat)
}

// ─────────────────────────────────────────────
// Diff
// ─────────────────────────────────────────────

// diffLines returns the removed ("-") or added ("+") lines of a unified
// diff, without the sign and surrounding blanks.
func diffLines(report, sign string) []string {
	var lines []string
	for _, line := range strings.Split(report, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, sign); ok {
			lines = append(lines, strings.TrimSpace(rest))
		}
	}
	return lines
}

func hasLineContaining(lines []string, sub string) bool {
	for _, line := range lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func TestConfigService_Diff_ReportsOverlayFields(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	report, err := svc.Diff(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report, "--- development\n+++ production\n"))

	removed := diffLines(report, "-")
	added := diffLines(report, "+")
	assert.Contains(t, removed, "- name: "+assembler.PluginHotModuleReplace)
	assert.Contains(t, removed, "- name: "+assembler.PluginNoErrors)
	assert.Contains(t, removed, "- webpack/hot/dev-server")
	assert.Contains(t, added, "- name: "+assembler.PluginDedupe)
	assert.Contains(t, added, "- name: "+assembler.PluginUglifyJS)
	assert.True(t, hasLineContaining(added, "[id].[chunkhash].js"))
}

// TestConfigService_Diff_Stable checks that the report is plain ASCII text
// and identical across calls and service instances.
func TestConfigService_Diff_Stable(t *testing.T) {
	first, err := newTestConfigService(testBuildConfig()).Diff(context.Background())
	require.NoError(t, err)
	second, err := newTestConfigService(testBuildConfig()).Diff(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, first, "\u00a0")
	assert.True(t, strings.HasSuffix(first, "\n"))
}

func TestDiffReport_IdenticalIsEmpty(t *testing.T) {
	bundle, err := newTestConfigService(testBuildConfig()).Assemble(context.Background(), models.ModeProduction)
	require.NoError(t, err)

	report, err := diffReport(bundle, bundle)

	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestConfigService_Diff_InvalidBuildConfig(t *testing.T) {
	cfg := testBuildConfig()
	cfg.Server.Port = 0
	svc := newTestConfigService(cfg)

	report, err := svc.Diff(context.Background())

	assert.Empty(t, report)
	assert.ErrorIs(t, err, config.ErrInvalidServerConfig)
}

// ─────────────────────────────────────────────
// Match
// ─────────────────────────────────────────────

func TestConfigService_Match(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	rule, err := svc.Match(context.Background(), models.ModeDevelopment, "/assets/logo.gif")

	require.NoError(t, err)
	assert.Equal(t, `\.(png|jpg|gif)$`, rule.Test)
}

func TestConfigService_Match_NoRule(t *testing.T) {
	svc := newTestConfigService(testBuildConfig())

	_, err := svc.Match(context.Background(), models.ModeDevelopment, "/assets/readme.md")

	assert.ErrorIs(t, err, ErrNoRuleMatched)
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	a := assembler.NewAssembler(logger.Nop(), lipgloss.NewRenderer(io.Discard))
	services, err := NewServices(testBuildConfig(), models.NewAppBuildInfo("", "", ""), a, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.ConfigService)
	assert.IsType(t, &ConfigValidationService{}, services.ConfigService)
	assert.Equal(t, "N/A", services.AppInfoService.GetAppVersion(context.Background()))
}
