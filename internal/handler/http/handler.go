// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/service"
)

type Handler struct {
	services *service.Services
	distPath string

	logger *logger.Logger
}

// NewHandler creates a Handler. Static files are served from distPath;
// an empty distPath disables the file server.
func NewHandler(services *service.Services, distPath string, logger *logger.Logger) *Handler {
	logger.Info().Str("dist", distPath).Msg("http handler created")
	return &Handler{
		services: services,
		distPath: distPath,
		logger:   logger,
	}
}
