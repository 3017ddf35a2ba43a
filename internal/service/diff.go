// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// diffReport renders both configurations as YAML and returns a unified
// diff from development to production. Identical inputs give "".
func diffReport(development, production models.BundlerConfiguration) (string, error) {
	dev, err := encoder.Encode(development, encoder.FormatYAML)
	if err != nil {
		return "", fmt.Errorf("error rendering %s configuration: %w", models.ModeDevelopment, err)
	}
	prod, err := encoder.Encode(production, encoder.FormatYAML)
	if err != nil {
		return "", fmt.Errorf("error rendering %s configuration: %w", models.ModeProduction, err)
	}

	report, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(dev)),
		B:        difflib.SplitLines(string(prod)),
		FromFile: models.ModeDevelopment.String(),
		ToFile:   models.ModeProduction.String(),
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("error building diff report: %w", err)
	}

	return report, nil
}
