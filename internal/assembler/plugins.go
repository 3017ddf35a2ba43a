// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"github.com/MKhiriev/go-bundle-config/models"
)

func webpackPlugin(name string, opts models.Options) models.PluginSpec {
	return models.PluginSpec{
		Name:    name,
		Module:  webpackModule,
		Kind:    models.PluginConstructor,
		Options: opts,
	}
}

// definePlugin injects the build mode into the bundled application as
// compile time globals.
func definePlugin(cfg buildInput) models.PluginSpec {
	return webpackPlugin(PluginDefine, models.Opts(
		DefineNodeEnv, cfg.env,
		DefineDevelopment, cfg.development,
		DefineProduction, cfg.production,
	))
}

func progressBarPlugin(format string) models.PluginSpec {
	return models.PluginSpec{
		Name:   PluginProgressBar,
		Module: "progress-bar-webpack-plugin",
		Kind:   models.PluginConstructor,
		Options: models.Opts(
			"format", format,
			"clear", false,
		),
	}
}

func htmlPlugin(cfg buildInput) models.PluginSpec {
	return models.PluginSpec{
		Name:   PluginHTML,
		Module: "html-webpack-plugin",
		Kind:   models.PluginConstructor,
		Options: models.Opts(
			"template", cfg.htmlPath,
			"hash", false,
			"filename", htmlOutputFilename,
			"inject", htmlInject,
			"minify", models.Opts("collapseWhitespace", true),
		),
	}
}

// commonPlugins returns the plugins shared by every mode. The define plugin
// is always first.
func commonPlugins(cfg buildInput, progressFormat string) models.Plugins {
	return models.Plugins{
		definePlugin(cfg),
		progressBarPlugin(progressFormat),
		htmlPlugin(cfg),
	}
}

// stylusPlugins is the postcss chain run by the stylus compiler.
func stylusPlugins() models.Plugins {
	return models.Plugins{
		{
			Name:   "poststylus",
			Module: "poststylus",
			Kind:   models.PluginFactory,
			Args: models.Plugins{
				{Name: "normalize", Module: "postcss-normalize", Kind: models.PluginReference},
				{Name: "sorting", Module: "postcss-sorting", Kind: models.PluginReference},
				{
					Name:   "rucksack",
					Module: "rucksack-css",
					Kind:   models.PluginFactory,
					Options: models.Opts(
						"autoprefixer", true,
						"fallback", true,
					),
				},
			},
		},
	}
}
