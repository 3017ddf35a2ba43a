// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command bundlecfg assembles, renders, serves and builds the bundler
// configuration of a web application.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-bundle-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	a := newApp(os.Stdout, os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := newRootCommand(a).ExecuteContext(context.Background()); err != nil {
		a.logger.Fatal().Err(err).Msg("command failed")
	}
}
