// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-bundle-config/internal/adapter"
	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/mock"
	"github.com/MKhiriev/go-bundle-config/internal/service"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeApp(t, nil, args...)
}

// executeApp runs the root command; a non-nil client replaces the HTTP
// client used by the remote commands.
func executeApp(t *testing.T, client adapter.ConfigClient, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr, models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"))
	if client != nil {
		a.newClient = func(string, time.Duration, *logger.Logger) (adapter.ConfigClient, error) {
			return client, nil
		}
	}

	root := newRootCommand(a)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-19\nBuild commit: abc123\n", out)
}

func TestVersion_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("2.0.0"))
	}))
	defer srv.Close()

	out, _, err := execute(t, "version", "--from", srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0\n", out)
}

func TestAssemble_JSON(t *testing.T) {
	out, stderr, err := execute(t, "assemble", "--app-path", "/src/app.js")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "web", got["target"])
	assert.Contains(t, stderr, logRole)
}

func TestAssemble_JSToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webpack.config.js")

	out, _, err := execute(t, "--mode", "production", "assemble", "--format", "js", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "module.exports = {")
	assert.Contains(t, string(data), "[name].[chunkhash].js")
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"assemble", "--format", "toml"}},
		{"unknown mode", []string{"--mode", "staging", "assemble"}},
		{"bad port", []string{"--port", "70000", "assemble"}},
		{"extra argument", []string{"assemble", "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAssemble_OutDirectory(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "assemble", "--format", "yaml", "-o", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "webpack.config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: web")
	assert.Contains(t, stderr, "webpack.config.yaml")
}

func TestDiff(t *testing.T) {
	out, _, err := execute(t, "diff")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--- development\n+++ production\n"))
	assert.Contains(t, out, "chunkhash")
}

func TestDiff_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockConfigClient(ctrl)
	client.EXPECT().FetchDiff(gomock.Any()).Return("--- development\n+++ production\n", nil)

	out, _, err := executeApp(t, client, "diff", "--from", "localhost:3000")

	require.NoError(t, err)
	assert.Equal(t, "--- development\n+++ production\n", out)
}

func TestDiff_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockConfigClient(ctrl)
	client.EXPECT().FetchDiff(gomock.Any()).Return("", adapter.ErrInternalServerError)

	out, _, err := executeApp(t, client, "diff", "--from", "localhost:3000")

	assert.Empty(t, out)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestDiff_RemoteOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/diff", r.URL.Path)
		_, _ = w.Write([]byte("-a\n+b\n"))
	}))
	defer srv.Close()

	out, _, err := execute(t, "diff", "--from", srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "-a\n+b\n", out)
}

func TestMatch(t *testing.T) {
	out, _, err := execute(t, "match", "fonts/icons.woff2")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `test:    \.woff2(\?.*)?$`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "loaders: url?prefix=fonts/"))
}

func TestMatch_NoRule(t *testing.T) {
	_, _, err := execute(t, "match", "notes.txt")

	assert.ErrorIs(t, err, service.ErrNoRuleMatched)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/production", r.URL.Path)
		assert.Equal(t, "yaml", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte("target: web\n"))
	}))
	defer srv.Close()

	out, _, err := execute(t, "--mode", "production", "fetch", "--from", srv.URL, "--format", "yaml")

	require.NoError(t, err)
	assert.Equal(t, "target: web\n", out)
}

func TestFetch_MockClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockConfigClient(ctrl)
	client.EXPECT().
		FetchConfig(gomock.Any(), models.ModeDevelopment, encoder.FormatJS).
		Return([]byte("module.exports = {};\n"), nil)

	out, _, err := executeApp(t, client, "fetch", "--format", "js")

	require.NoError(t, err)
	assert.Equal(t, "module.exports = {};\n", out)
}

func TestVersion_RemoteMockClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockConfigClient(ctrl)
	client.EXPECT().FetchVersion(gomock.Any()).Return("3.1.4", nil)

	out, _, err := executeApp(t, client, "version", "--from", "localhost:3000")

	require.NoError(t, err)
	assert.Equal(t, "3.1.4\n", out)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	appPath := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(appPath, []byte("console.log(process.env.NODE_ENV)\n"), 0o600))
	dist := filepath.Join(dir, "dist")

	out, _, err := execute(t, "--app-path", appPath, "--dist-path", dist, "build")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dist, "app.*.js"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, out, files[0])
}
