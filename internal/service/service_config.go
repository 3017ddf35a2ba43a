// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/models"
)

type configService struct {
	cfg       config.BuildConfig
	assembler *assembler.Assembler

	logger *logger.Logger
}

// NewConfigService returns a ConfigService assembling from cfg. cfg is
// copied; later changes to the caller's value are not observed.
func NewConfigService(cfg config.BuildConfig, assembler *assembler.Assembler, logger *logger.Logger) ConfigService {
	return &configService{
		cfg:       cfg,
		assembler: assembler,
		logger:    logger,
	}
}

func (s *configService) Assemble(ctx context.Context, mode models.Mode) (models.BundlerConfiguration, error) {
	if mode == "" {
		mode = s.cfg.Mode
	}

	bundle, err := s.assembler.Assemble(s.cfg, mode)
	if err != nil {
		s.logger.Err(err).Str("mode", mode.String()).Msg("error assembling bundler configuration")
		return models.BundlerConfiguration{}, fmt.Errorf("error assembling %s configuration: %w", mode, err)
	}

	return bundle, nil
}

func (s *configService) Render(ctx context.Context, mode models.Mode, format encoder.Format) ([]byte, error) {
	bundle, err := s.Assemble(ctx, mode)
	if err != nil {
		return nil, err
	}

	data, err := encoder.Encode(bundle, format)
	if err != nil {
		return nil, fmt.Errorf("error rendering configuration: %w", err)
	}

	return data, nil
}

func (s *configService) Diff(ctx context.Context) (string, error) {
	development, err := s.Assemble(ctx, models.ModeDevelopment)
	if err != nil {
		return "", err
	}
	production, err := s.Assemble(ctx, models.ModeProduction)
	if err != nil {
		return "", err
	}

	return diffReport(development, production)
}

func (s *configService) Match(ctx context.Context, mode models.Mode, path string) (models.TransformRule, error) {
	bundle, err := s.Assemble(ctx, mode)
	if err != nil {
		return models.TransformRule{}, err
	}

	rule, ok := bundle.RuleFor(path)
	if !ok {
		return models.TransformRule{}, fmt.Errorf("%w: %s", ErrNoRuleMatched, path)
	}

	return rule, nil
}
