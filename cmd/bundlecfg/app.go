// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-bundle-config/internal/adapter"
	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/service"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const logRole = "app:webpack:config"

// app carries the process wide dependencies shared by all commands.
// Logs go to stderr so rendered output on stdout can be piped.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// newClient connects to a running server for fetch, diff --from and
	// version --from.
	newClient func(address string, timeout time.Duration, logger *logger.Logger) (adapter.ConfigClient, error)
}

func newApp(stdout, stderr io.Writer, buildInfo models.AppBuildInfo) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		buildInfo: buildInfo,
		logger:    logger.NewWriterLogger(logRole, stderr),
		newClient: adapter.NewHTTPConfigClient,
	}
}

// services loads the build configuration from the command's flags, the
// environment and the optional config file, and wires the service layer.
func (a *app) services(cmd *cobra.Command) (*service.Services, *config.BuildConfig, error) {
	cfg, err := config.GetBuildConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	a.logger.Debug().Any("config", cfg).Msg("received configs")

	asm := assembler.NewAssembler(a.logger, lipgloss.NewRenderer(a.stdout))

	services, err := service.NewServices(*cfg, a.buildInfo, asm, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating services: %w", err)
	}

	return services, cfg, nil
}
