// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/validators"
	"github.com/MKhiriev/go-bundle-config/models"
)

// ConfigValidationService checks requested modes and paths before calling
// the wrapped service, and validates every configuration it returns.
type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewBundleValidator(),
	}
}

func (v *ConfigValidationService) Assemble(ctx context.Context, mode models.Mode) (models.BundlerConfiguration, error) {
	if err := validateMode(mode); err != nil {
		return models.BundlerConfiguration{}, err
	}

	bundle, err := v.inner.Assemble(ctx, mode)
	if err != nil {
		return models.BundlerConfiguration{}, err
	}

	if err := v.validator.Validate(ctx, bundle); err != nil {
		return models.BundlerConfiguration{}, fmt.Errorf("%w: %w", ErrValidationBundle, err)
	}

	return bundle, nil
}

// Render encodes the validated configuration returned by Assemble.
func (v *ConfigValidationService) Render(ctx context.Context, mode models.Mode, format encoder.Format) ([]byte, error) {
	bundle, err := v.Assemble(ctx, mode)
	if err != nil {
		return nil, err
	}

	data, err := encoder.Encode(bundle, format)
	if err != nil {
		return nil, fmt.Errorf("error rendering configuration: %w", err)
	}

	return data, nil
}

// Diff validates both configurations and reports on exactly the values
// that passed validation.
func (v *ConfigValidationService) Diff(ctx context.Context) (string, error) {
	development, err := v.Assemble(ctx, models.ModeDevelopment)
	if err != nil {
		return "", err
	}
	production, err := v.Assemble(ctx, models.ModeProduction)
	if err != nil {
		return "", err
	}

	return diffReport(development, production)
}

func (v *ConfigValidationService) Match(ctx context.Context, mode models.Mode, path string) (models.TransformRule, error) {
	if err := validateMode(mode); err != nil {
		return models.TransformRule{}, err
	}
	if path == "" {
		return models.TransformRule{}, ErrValidationEmptyPath
	}

	return v.inner.Match(ctx, mode, path)
}

func (v *ConfigValidationService) Wrap(wrapped ConfigService) ConfigService {
	v.inner = wrapped
	return v
}

func validateMode(mode models.Mode) error {
	if mode != "" && !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrValidationUnknownMode, mode)
	}

	return nil
}
