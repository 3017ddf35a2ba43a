// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/evanw/esbuild/pkg/api"
)

type Builder struct {
	logger *logger.Logger
}

func NewBuilder(logger *logger.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build translates cfg and runs esbuild, writing bundles to the output path.
// Cancelling ctx stops the build.
func (b *Builder) Build(ctx context.Context, cfg models.BundlerConfiguration) (api.BuildResult, error) {
	opts, unsupported := Translate(cfg)
	for _, u := range unsupported {
		b.logger.Warn().Str("kind", u.Kind).Str("name", u.Name).Str("detail", u.Detail).Msg("skipped during translation")
	}

	if len(opts.EntryPointsAdvanced) == 0 {
		return api.BuildResult{}, ErrNoEntryPoints
	}

	buildCtx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		b.logMessages(ctxErr.Errors)
		return api.BuildResult{}, fmt.Errorf("%w: %d errors in build options", ErrBuildFailed, len(ctxErr.Errors))
	}
	defer buildCtx.Dispose()

	stop := context.AfterFunc(ctx, buildCtx.Cancel)
	defer stop()

	result := buildCtx.Rebuild()
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("build cancelled: %w", err)
	}

	for _, w := range result.Warnings {
		b.logger.Warn().Str("warning", w.Text).Msg("build warning")
	}
	if len(result.Errors) > 0 {
		b.logMessages(result.Errors)
		return result, fmt.Errorf("%w: %d errors", ErrBuildFailed, len(result.Errors))
	}

	for _, file := range result.OutputFiles {
		b.logger.Info().Str("file", file.Path).Int("size", len(file.Contents)).Msg("built file")
	}

	return result, nil
}

func (b *Builder) logMessages(msgs []api.Message) {
	for _, msg := range msgs {
		event := b.logger.Error().Str("error", msg.Text)
		if msg.Location != nil {
			event = event.Str("file", msg.Location.File).Int("line", msg.Location.Line)
		}
		event.Msg("build error")
	}
}
