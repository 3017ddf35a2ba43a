// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"github.com/MKhiriev/go-bundle-config/internal/config"
	"github.com/MKhiriev/go-bundle-config/models"
)

// Overlay computes the mode specific changes for a build configuration.
type Overlay func(cfg config.BuildConfig) Patch

// PluginOptionsPatch sets options on an already present plugin.
type PluginOptionsPatch struct {
	Plugin  string
	Options models.Options
}

// Patch is the set of changes an overlay makes to the common bundler
// configuration. Zero fields leave the common value untouched.
type Patch struct {
	// Entry replaces the modules of every entry it names.
	Entry models.EntryMap

	// Non-empty Filename and ChunkFilename replace the common output names.
	Output models.OutputSpec

	// DefaultDevtool is used only when the common devtool is empty.
	DefaultDevtool string

	Cache *bool

	// PluginOptions are merged into the options of existing plugins.
	PluginOptions []PluginOptionsPatch

	// Plugins are appended after the common plugins.
	Plugins models.Plugins
}

// Apply returns a copy of base with p applied. base is not modified.
func (p Patch) Apply(base models.BundlerConfiguration) models.BundlerConfiguration {
	out := base.Clone()

	for _, entry := range p.Entry {
		out.Entry = out.Entry.Set(entry.Name, entry.Modules...)
	}

	if p.Output.Filename != "" {
		out.Output.Filename = p.Output.Filename
	}
	if p.Output.ChunkFilename != "" {
		out.Output.ChunkFilename = p.Output.ChunkFilename
	}

	if out.Devtool == "" {
		out.Devtool = p.DefaultDevtool
	}
	if p.Cache != nil {
		out.Cache = *p.Cache
	}

	for _, patch := range p.PluginOptions {
		i := out.Plugins.Index(patch.Plugin)
		if i < 0 {
			continue
		}
		for _, opt := range patch.Options {
			out.Plugins[i].Options = out.Plugins[i].Options.Set(opt.Key, opt.Value)
		}
	}

	out.Plugins = append(out.Plugins, p.Plugins.Clone()...)
	return out
}

// Development keeps hot module replacement enabled and HTML output readable.
func Development(config.BuildConfig) Patch {
	return Patch{
		PluginOptions: []PluginOptionsPatch{
			{Plugin: PluginHTML, Options: models.Opts("minify", false)},
		},
		Plugins: models.Plugins{
			webpackPlugin(PluginHotModuleReplace, nil),
			webpackPlugin(PluginNoErrors, nil),
		},
	}
}

// Production drops the hot reload bootstrap, hashes chunk names and enables
// minification and vendor splitting.
func Production(cfg config.BuildConfig) Patch {
	cache := false
	return Patch{
		Entry: models.EntryMap{
			{Name: EntryApp, Modules: []string{cfg.Paths.AppPath}},
		},
		Output: models.OutputSpec{
			Filename:      prodOutputFilename,
			ChunkFilename: prodOutputChunkFilename,
		},
		DefaultDevtool: prodDevtool,
		Cache:          &cache,
		Plugins: models.Plugins{
			webpackPlugin(PluginOccurrenceOrder, nil),
			webpackPlugin(PluginDedupe, nil),
			webpackPlugin(PluginUglifyJS, models.Opts(
				"compress", models.Opts(
					"unused", true,
					"dead_code", true,
					"warnings", false,
				),
			)),
			webpackPlugin(PluginCommonsChunk, models.Opts(
				"names", []string{EntryVendor},
			)),
		},
	}
}

// OverlayFor returns the overlay of mode, or nil for an unknown mode.
func OverlayFor(mode models.Mode) Overlay {
	switch mode {
	case models.ModeDevelopment:
		return Development
	case models.ModeProduction:
		return Production
	default:
		return nil
	}
}
