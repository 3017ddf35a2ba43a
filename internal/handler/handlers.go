// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/handler/http"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for cfg. The HTTP handler serves
// the output directory of cfg next to the configuration API.
func NewHandlers(services *service.Services, cfg config.BuildConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Paths.DistPath, logger),
	}, nil
}
