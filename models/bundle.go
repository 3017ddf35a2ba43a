// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BundlerConfiguration is the assembled configuration handed to the bundler.
// Field names and JSON keys follow the bundler's own schema.
type BundlerConfiguration struct {
	// Target is the platform the bundle runs on (e.g. "web").
	Target string `json:"target" yaml:"target"`

	// Devtool selects the source map flavour. Empty disables source maps.
	Devtool string `json:"devtool" yaml:"devtool"`

	Node NodeSpec `json:"node" yaml:"node"`

	// Cache enables the bundler's in-memory module cache.
	Cache bool `json:"cache" yaml:"cache"`

	Resolve ResolveSpec `json:"resolve" yaml:"resolve"`

	Entry EntryMap `json:"entry" yaml:"entry"`

	Output OutputSpec `json:"output" yaml:"output"`

	Module ModuleSpec `json:"module" yaml:"module"`

	Stylus StylusSpec `json:"stylus" yaml:"stylus"`

	Plugins Plugins `json:"plugins" yaml:"plugins"`
}

// NodeSpec controls the polyfills for Node core modules.
type NodeSpec struct {
	FS string `json:"fs" yaml:"fs"`
}

// ResolveSpec controls how bare import paths are resolved.
type ResolveSpec struct {
	// Extensions are tried in order; the empty string allows fully
	// specified paths.
	Extensions         []string `json:"extensions" yaml:"extensions"`
	ModulesDirectories []string `json:"modulesDirectories" yaml:"modulesDirectories"`
}

// OutputSpec describes where and under which names bundles are written.
type OutputSpec struct {
	Path          string `json:"path" yaml:"path"`
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename,omitempty" yaml:"chunkFilename,omitempty"`
	PublicPath    string `json:"publicPath" yaml:"publicPath"`
}

// ModuleSpec holds the transform rules applied to source modules.
type ModuleSpec struct {
	Loaders []TransformRule `json:"loaders" yaml:"loaders"`
}

// StylusSpec configures the stylesheet compiler; Use is its plugin chain.
type StylusSpec struct {
	Use Plugins `json:"use" yaml:"use"`
}

// Clone returns a deep copy of c that shares no slices with it.
func (c BundlerConfiguration) Clone() BundlerConfiguration {
	out := c
	out.Resolve = ResolveSpec{
		Extensions:         append([]string(nil), c.Resolve.Extensions...),
		ModulesDirectories: append([]string(nil), c.Resolve.ModulesDirectories...),
	}
	out.Entry = c.Entry.Clone()

	if c.Module.Loaders != nil {
		out.Module.Loaders = make([]TransformRule, len(c.Module.Loaders))
		for i, rule := range c.Module.Loaders {
			out.Module.Loaders[i] = rule.Clone()
		}
	}

	out.Stylus.Use = c.Stylus.Use.Clone()
	out.Plugins = c.Plugins.Clone()
	return out
}

// RuleFor returns the first transform rule that handles path.
func (c BundlerConfiguration) RuleFor(path string) (TransformRule, bool) {
	for _, rule := range c.Module.Loaders {
		if rule.Matches(path) {
			return rule, true
		}
	}

	return TransformRule{}, false
}
