// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bundlecfg",
		Short: "Assemble the bundler configuration of a web application",
		Long: `bundlecfg assembles the bundler configuration for the development or
production mode from defaults, environment variables, flags and an optional
JSON or YAML config file.

Examples:
  bundlecfg assemble --format js -o webpack.config.js
  bundlecfg --mode production diff
  bundlecfg match src/fonts/icons.woff2
  bundlecfg serve --port 3000`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newAssembleCommand(a),
		newDiffCommand(a),
		newMatchCommand(a),
		newServeCommand(a),
		newBuildCommand(a),
		newFetchCommand(a),
		newVersionCommand(a),
	)

	return root
}
