// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/models"
)

// Field name constants used to restrict BundleValidator to a subset of
// checks.
const (
	// FieldEntry targets the app and vendor entries.
	FieldEntry = "entry"

	// FieldPlugins targets plugin order and kinds.
	FieldPlugins = "plugins"

	// FieldRules targets the transform rules.
	FieldRules = "rules"

	// FieldOutput targets the output path and filename.
	FieldOutput = "output"
)

var requiredEntries = []string{assembler.EntryApp, assembler.EntryVendor}

// BundleValidator checks an assembled models.BundlerConfiguration before it
// is rendered or built.
type BundleValidator struct{}

// NewBundleValidator constructs a new BundleValidator and returns it as the
// Validator interface.
func NewBundleValidator() Validator {
	return &BundleValidator{}
}

// Validate accepts models.BundlerConfiguration by value or pointer.
// Without fields every check runs.
func (v *BundleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BundlerConfiguration:
		return v.validateBundle(ctx, value, fields...)
	case *models.BundlerConfiguration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBundle(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BundleValidator) validateBundle(_ context.Context, cfg models.BundlerConfiguration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntry, FieldPlugins, FieldRules, FieldOutput}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEntry:
			err = validateEntries(cfg.Entry)
		case FieldPlugins:
			err = validatePlugins(cfg.Plugins)
			if err == nil {
				err = validatePluginKinds(cfg.Stylus.Use)
			}
		case FieldRules:
			err = validateRules(cfg.Module.Loaders)
		case FieldOutput:
			if cfg.Output.Path == "" || cfg.Output.Filename == "" {
				err = ErrInvalidOutput
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEntries(entries models.EntryMap) error {
	for _, name := range requiredEntries {
		modules, ok := entries.Get(name)
		if !ok || len(modules) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingEntry, name)
		}
	}

	return nil
}

func validatePlugins(plugins models.Plugins) error {
	if len(plugins) == 0 || plugins[0].Name != assembler.PluginDefine {
		return ErrDefinePluginNotFirst
	}

	return validatePluginKinds(plugins)
}

func validatePluginKinds(plugins models.Plugins) error {
	var err error
	plugins.Walk(func(p models.PluginSpec) {
		if err != nil {
			return
		}
		switch p.Kind {
		case models.PluginConstructor, models.PluginFactory, models.PluginReference:
		default:
			err = fmt.Errorf("%w: %s has kind %q", ErrInvalidPluginKind, p.Name, p.Kind)
		}
	})

	return err
}

func validateRules(rules []models.TransformRule) error {
	for i, rule := range rules {
		if _, err := regexp.Compile(rule.Test); err != nil {
			return fmt.Errorf("validation error at rule %d: %w: %w", i, ErrInvalidRuleTest, err)
		}
		if len(rule.Loaders) == 0 {
			return fmt.Errorf("validation error at rule %d: %w", i, ErrEmptyLoaders)
		}
	}

	return nil
}
