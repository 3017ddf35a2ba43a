// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/spf13/cobra"
)

const (
	outputFileMode = 0o644

	// defaultConfigName is the file name used when --out is a directory.
	defaultConfigName = "webpack.config"
)

func newAssembleCommand(a *app) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Print the configuration of the selected mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := encoder.ParseFormat(format)
			if err != nil {
				return err
			}

			services, _, err := a.services(cmd)
			if err != nil {
				return err
			}

			data, err := services.ConfigService.Render(cmd.Context(), "", f)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = a.stdout.Write(data)
				return err
			}

			path := outputPath(out, f)
			if err := os.WriteFile(path, data, outputFileMode); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}
			a.logger.Info().Str("file", path).Str("format", string(f)).Msg("configuration written")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(encoder.FormatJSON), "Output format: "+formatNames())
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout; a directory gets "+defaultConfigName+".<format>")

	return cmd
}

// outputPath resolves --out: an existing directory receives the default
// file name with the format's extension.
func outputPath(out string, f encoder.Format) string {
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, defaultConfigName+f.Extension())
	}

	return out
}

func newDiffCommand(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the production configuration differs from development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				report string
				err    error
			)
			if from != "" {
				report, err = a.remoteDiff(cmd, from)
			} else {
				report, err = a.localDiff(cmd)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(a.stdout, report)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Query the diff of the server at this address")

	return cmd
}

func (a *app) localDiff(cmd *cobra.Command) (string, error) {
	services, _, err := a.services(cmd)
	if err != nil {
		return "", err
	}

	return services.ConfigService.Diff(cmd.Context())
}

func (a *app) remoteDiff(cmd *cobra.Command, from string) (string, error) {
	client, err := a.newClient(from, defaultFetchTimeout, a.logger)
	if err != nil {
		return "", err
	}

	return client.FetchDiff(cmd.Context())
}

func newMatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <path>",
		Short: "Show the transform rule that handles a module path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, err := a.services(cmd)
			if err != nil {
				return err
			}

			rule, err := services.ConfigService.Match(cmd.Context(), "", args[0])
			if err != nil {
				return err
			}

			loaders := make([]string, len(rule.Loaders))
			for i, l := range rule.Loaders {
				loaders[i] = l.String()
			}

			_, err = fmt.Fprintf(a.stdout, "test:    %s\nloaders: %s\n", rule.Test, strings.Join(loaders, "!"))
			return err
		},
	}
}

func formatNames() string {
	names := make([]string, len(encoder.Formats))
	for i, f := range encoder.Formats {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}
