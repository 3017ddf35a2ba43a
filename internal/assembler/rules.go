// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"github.com/MKhiriev/go-bundle-config/models"
)

const (
	fontFilePrefix = "prefix=fonts/&name=[path][name]"
	fontFileType   = ".[ext]&limit=10000&mimetype="

	// The svg query carries an unexpanded template placeholder. It is kept
	// verbatim because deployed configurations already depend on it.
	svgQuery = "{$filePrefix}.[ext]&limit=10000&mimetype=image/svg+xml"

	cssQuery    = "sourceMap&-minimize&modules&importLoaders=1&localIdentName=[name]__[local]___[hash:base64:5]"
	stylusQuery = "resolve url"
)

// scriptRules handles application scripts and JSON modules.
func scriptRules(cfg buildInput) []models.TransformRule {
	return []models.TransformRule{
		{
			Test:       `\.jsx?$`,
			Extensions: []string{".js", ".jsx"},
			Include:    cfg.appPath,
			Loaders:    []models.Loader{{Name: "babel", Query: "cacheDirectory"}},
		},
		{
			Test:       `\.json$`,
			Extensions: []string{".json"},
			Loaders:    []models.Loader{{Name: "json"}},
		},
	}
}

// styleRule compiles stylus sheets under the application root into scoped
// CSS modules.
func styleRule(cfg buildInput) models.TransformRule {
	return models.TransformRule{
		Test:       `\.styl$`,
		Extensions: []string{".styl"},
		Include:    cfg.appPath,
		Loaders: []models.Loader{
			{Name: "style"},
			{Name: "css", Query: cssQuery},
			{Name: "postcss"},
			{Name: "stylus", Query: stylusQuery},
		},
	}
}

// fontRules returns one rule per font format, in a fixed order.
func fontRules() []models.TransformRule {
	return []models.TransformRule{
		fontRule("woff", "url", fontFilePrefix+fontFileType+"application/font-woff"),
		fontRule("woff2", "url", fontFilePrefix+fontFileType+"application/font-woff2"),
		fontRule("otf", "file", fontFilePrefix+fontFileType+"font/opentype"),
		fontRule("ttf", "url", fontFilePrefix+fontFileType+"application/octet-stream"),
		fontRule("eot", "file", fontFilePrefix),
		fontRule("svg", "url", svgQuery),
	}
}

func fontRule(ext, loader, query string) models.TransformRule {
	return models.TransformRule{
		Test:       `\.` + ext + `(\?.*)?$`,
		Extensions: []string{"." + ext},
		Loaders:    []models.Loader{{Name: loader, Query: query}},
	}
}

func imageRule() models.TransformRule {
	return models.TransformRule{
		Test:       `\.(png|jpg|gif)$`,
		Extensions: []string{".png", ".jpg", ".gif"},
		Loaders:    []models.Loader{{Name: "url", Query: "limit=8192"}},
	}
}

// transformRules returns every rule in evaluation order: scripts, styles,
// fonts, images.
func transformRules(cfg buildInput) []models.TransformRule {
	rules := make([]models.TransformRule, 0, 10)
	rules = append(rules, scriptRules(cfg)...)
	rules = append(rules, styleRule(cfg))
	rules = append(rules, fontRules()...)
	rules = append(rules, imageRule())
	return rules
}
