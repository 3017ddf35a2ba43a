// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_service_mock.go -package=mock -exclude_interfaces=ConfigServiceWrapper

// ConfigService exposes the bundler configuration use-cases. An empty mode
// selects the mode of the loaded build configuration.
type ConfigService interface {
	Assemble(ctx context.Context, mode models.Mode) (models.BundlerConfiguration, error)
	Render(ctx context.Context, mode models.Mode, format encoder.Format) ([]byte, error)

	// Diff reports how the production configuration differs from the
	// development one.
	Diff(ctx context.Context) (string, error)

	// Match returns the first transform rule that handles path.
	Match(ctx context.Context, mode models.Mode, path string) (models.TransformRule, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// logging or validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}
