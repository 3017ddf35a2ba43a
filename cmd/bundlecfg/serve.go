// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/builder"
	"github.com/MKhiriev/go-bundle-config/internal/handler"
	"github.com/MKhiriev/go-bundle-config/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration API and the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(a.stdout, a.buildInfo.String())

			services, cfg, err := a.services(cmd)
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(services, *cfg, a.logger)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, cfg.Server, a.logger)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			return srv.Run(cmd.Context())
		},
	}
}

func newBuildCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Bundle the application with esbuild using the assembled configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, _, err := a.services(cmd)
			if err != nil {
				return err
			}

			bundle, err := services.ConfigService.Assemble(cmd.Context(), "")
			if err != nil {
				return err
			}

			result, err := builder.NewBuilder(a.logger).Build(cmd.Context(), bundle)
			if err != nil {
				return err
			}

			for _, file := range result.OutputFiles {
				fmt.Fprintln(a.stdout, file.Path)
			}
			return nil
		},
	}
}
