// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/evanw/esbuild/pkg/api"
)

// loaders maps single-step transform pipelines onto esbuild loaders.
var loaders = map[string]api.Loader{
	"babel": api.LoaderJSX,
	"json":  api.LoaderJSON,
	"url":   api.LoaderFile,
	"file":  api.LoaderFile,
}

// nativePlugins are plugins whose effect esbuild provides on its own or
// that Translate maps onto build options.
var nativePlugins = map[string]bool{
	assembler.PluginDefine:           true,
	assembler.PluginNoErrors:         true,
	assembler.PluginOccurrenceOrder:  true,
	assembler.PluginDedupe:           true,
	assembler.PluginUglifyJS:         true,
	assembler.PluginCommonsChunk:     true,
	assembler.PluginHotModuleReplace: true,
}

// Unsupported names a part of the configuration that has no esbuild
// equivalent and was left out of the build options.
type Unsupported struct {
	Kind   string
	Name   string
	Detail string
}

func (u Unsupported) String() string {
	return u.Kind + " " + u.Name + ": " + u.Detail
}

// Translate converts cfg into esbuild build options. Only entry modules that
// are file paths, or relative paths present on disk, become entry points.
// Package names and the hot reload runtime are skipped.
func Translate(cfg models.BundlerConfiguration) (api.BuildOptions, []Unsupported) {
	var unsupported []Unsupported

	opts := api.BuildOptions{
		EntryPointsAdvanced: entryPoints(cfg.Entry),
		Bundle:              true,
		Write:               true,
		Outdir:              cfg.Output.Path,
		EntryNames:          outputPattern(cfg.Output.Filename),
		ChunkNames:          outputPattern(cfg.Output.ChunkFilename),
		PublicPath:          cfg.Output.PublicPath,
		Platform:            platform(cfg.Target),
		Sourcemap:           sourcemap(cfg.Devtool),
		ResolveExtensions:   resolveExtensions(cfg.Resolve.Extensions),
		Format:              api.FormatIIFE,
		LogLevel:            api.LogLevelSilent,
		Loader:              make(map[string]api.Loader),
		Define:              make(map[string]string),
	}

	for _, rule := range cfg.Module.Loaders {
		if len(rule.Loaders) != 1 {
			unsupported = append(unsupported, Unsupported{Kind: "rule", Name: rule.Test, Detail: "loader chain " + chain(rule.Loaders)})
			continue
		}

		loader, ok := loaders[rule.Loaders[0].Name]
		if !ok {
			unsupported = append(unsupported, Unsupported{Kind: "rule", Name: rule.Test, Detail: "loader " + rule.Loaders[0].Name})
			continue
		}
		for _, ext := range rule.Extensions {
			opts.Loader[ext] = loader
		}
	}

	for _, plugin := range cfg.Plugins {
		switch plugin.Name {
		case assembler.PluginDefine:
			for _, opt := range plugin.Options {
				opts.Define[opt.Key] = defineValue(opt.Value)
			}
		case assembler.PluginUglifyJS:
			opts.MinifyWhitespace = true
			opts.MinifyIdentifiers = true
			opts.MinifySyntax = true
		case assembler.PluginCommonsChunk:
			opts.Splitting = true
			opts.Format = api.FormatESModule
		}

		if !nativePlugins[plugin.Name] {
			unsupported = append(unsupported, Unsupported{Kind: "plugin", Name: plugin.Name, Detail: "no esbuild equivalent"})
		}
	}

	for _, plugin := range cfg.Stylus.Use {
		unsupported = append(unsupported, Unsupported{Kind: "stylus plugin", Name: plugin.Name, Detail: "no esbuild equivalent"})
	}

	return opts, unsupported
}

func entryPoints(entries models.EntryMap) []api.EntryPoint {
	var points []api.EntryPoint
	for _, entry := range entries {
		for _, module := range entry.Modules {
			path, ok := localPath(module)
			if !ok {
				continue
			}
			points = append(points, api.EntryPoint{InputPath: path, OutputPath: entry.Name})
		}
	}

	return points
}

// localPath reports whether module names a file rather than a package. A
// bare relative path such as "src" counts only when it exists and is
// returned with a "./" prefix so esbuild does not resolve it as a package.
func localPath(module string) (string, bool) {
	if filepath.IsAbs(module) || strings.HasPrefix(module, "./") || strings.HasPrefix(module, "../") {
		return module, true
	}

	if _, err := os.Stat(module); err != nil {
		return "", false
	}
	return "./" + filepath.ToSlash(module), true
}

// outputPattern converts a bundler filename template to an esbuild one:
// esbuild appends the extension itself and has a single content hash.
func outputPattern(filename string) string {
	if filename == "" {
		return ""
	}

	r := strings.NewReplacer(
		"[chunkhash]", "[hash]",
		"[id]", "[name]",
	)
	return r.Replace(strings.TrimSuffix(filename, ".js"))
}

func platform(target string) api.Platform {
	switch target {
	case "web":
		return api.PlatformBrowser
	case "node":
		return api.PlatformNode
	default:
		return api.PlatformNeutral
	}
}

func sourcemap(devtool string) api.SourceMap {
	switch {
	case devtool == "":
		return api.SourceMapNone
	case strings.Contains(devtool, "eval"), strings.Contains(devtool, "inline"):
		return api.SourceMapInline
	case strings.Contains(devtool, "hidden"):
		return api.SourceMapExternal
	default:
		return api.SourceMapLinked
	}
}

func resolveExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext != "" {
			out = append(out, ext)
		}
	}

	return out
}

// defineValue renders a define option as the JavaScript expression esbuild
// substitutes. Strings are already expressions.
func defineValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return "undefined"
		}
		return string(data)
	}
}

func chain(ls []models.Loader) string {
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}

	return strings.Join(names, "!")
}
