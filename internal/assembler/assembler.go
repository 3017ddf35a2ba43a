// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"fmt"

	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/charmbracelet/lipgloss"
)

// Assembler turns build configurations into bundler configurations.
// It holds no per-call state and is safe for concurrent use.
type Assembler struct {
	logger         *logger.Logger
	progressFormat string
}

// NewAssembler creates an Assembler. The renderer decides whether the
// progress bar format carries colour escapes; nil selects the default
// terminal renderer.
func NewAssembler(log *logger.Logger, renderer *lipgloss.Renderer) *Assembler {
	return &Assembler{
		logger:         log,
		progressFormat: ProgressFormat(renderer),
	}
}

// buildInput is the subset of a validated build configuration the assembly
// steps read.
type buildInput struct {
	appPath    string
	htmlPath   string
	distPath   string
	publicPath string
	devtool    string
	cache      bool

	env         string
	development bool
	production  bool
}

func newBuildInput(cfg config.BuildConfig) buildInput {
	development, production := cfg.Globals()
	return buildInput{
		appPath:     cfg.Paths.AppPath,
		htmlPath:    cfg.Paths.HTMLPath,
		distPath:    cfg.Paths.DistPath,
		publicPath:  cfg.Server.PublicURL(),
		devtool:     cfg.DevTool,
		cache:       cfg.CacheEnabled(),
		env:         cfg.Env(),
		development: development,
		production:  production,
	}
}

// Assemble builds the bundler configuration for mode. An empty mode uses
// cfg.Mode. cfg is validated first; any failure is returned wrapped in
// [ErrInvalidBuildConfig] and no configuration is produced.
func (a *Assembler) Assemble(cfg config.BuildConfig, mode models.Mode) (models.BundlerConfiguration, error) {
	cfg, err := a.prepare(cfg, mode)
	if err != nil {
		return models.BundlerConfiguration{}, err
	}

	base := a.common(cfg)

	a.logger.Debug().Str("mode", cfg.Mode.String()).Msg("Applying mode overlay")
	return OverlayFor(cfg.Mode)(cfg).Apply(base), nil
}

// Common builds the configuration shared by every mode, before the mode
// overlay is applied. The mode still selects the injected globals.
func (a *Assembler) Common(cfg config.BuildConfig, mode models.Mode) (models.BundlerConfiguration, error) {
	cfg, err := a.prepare(cfg, mode)
	if err != nil {
		return models.BundlerConfiguration{}, err
	}

	return a.common(cfg), nil
}

func (a *Assembler) prepare(cfg config.BuildConfig, mode models.Mode) (config.BuildConfig, error) {
	if mode != "" {
		cfg.Mode = mode
	}

	if err := cfg.Validate(); err != nil {
		a.logger.Err(err).Msg("Invalid build configuration")
		return config.BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidBuildConfig, err)
	}

	return cfg, nil
}

func (a *Assembler) common(cfg config.BuildConfig) models.BundlerConfiguration {
	a.logger.Debug().Msg("Starting Webpack Configurations...")
	in := newBuildInput(cfg)

	return models.BundlerConfiguration{
		Target:  targetWeb,
		Devtool: in.devtool,
		Node:    models.NodeSpec{FS: nodeFSEmpty},
		Cache:   in.cache,
		Resolve: models.ResolveSpec{
			Extensions:         append([]string(nil), ResolveExtensions...),
			ModulesDirectories: append([]string(nil), ModulesDirectories...),
		},
		Entry: models.EntryMap{
			{Name: EntryApp, Modules: []string{hotDevServerModule, hotClientModule, in.appPath}},
			{Name: EntryVendor, Modules: append([]string(nil), VendorModules...)},
		},
		Output: models.OutputSpec{
			Path:       in.distPath,
			Filename:   outputFilename,
			PublicPath: in.publicPath,
		},
		Module:  models.ModuleSpec{Loaders: transformRules(in)},
		Stylus:  models.StylusSpec{Use: stylusPlugins()},
		Plugins: commonPlugins(in, a.progressFormat),
	}
}
