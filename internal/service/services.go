// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/models"
)

type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
}

func NewServices(cfg config.BuildConfig, buildInfo models.AppBuildInfo, assembler *assembler.Assembler, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo.BuildVersion(), logger)
	if err != nil {
		return nil, err
	}

	configService := NewConfigValidationService().Wrap(
		NewConfigService(cfg, assembler, logger),
	)

	return &Services{
		ConfigService:  configService,
		AppInfoService: appInfoService,
	}, nil
}
