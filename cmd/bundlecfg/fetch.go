// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/spf13/cobra"
)

const defaultFetchTimeout = 10 * time.Second

func newFetchCommand(a *app) *cobra.Command {
	var (
		from    string
		format  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the rendered configuration from a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := encoder.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := config.GetBuildConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if from == "" {
				from = cfg.Server.Address()
			}

			client, err := a.newClient(from, timeout, a.logger)
			if err != nil {
				return err
			}

			data, err := client.FetchConfig(cmd.Context(), cfg.Mode, f)
			if err != nil {
				return err
			}

			_, err = a.stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Server address (defaults to the configured host:port)")
	cmd.Flags().StringVar(&format, "format", string(encoder.FormatJSON), "Output format: "+formatNames())
	cmd.Flags().DurationVar(&timeout, "timeout", defaultFetchTimeout, "Request timeout")

	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information, or the version of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" {
				_, err := fmt.Fprint(a.stdout, a.buildInfo.String())
				return err
			}

			client, err := a.newClient(from, defaultFetchTimeout, a.logger)
			if err != nil {
				return err
			}

			version, err := client.FetchVersion(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, version)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Query the version of the server at this address")

	return cmd
}
