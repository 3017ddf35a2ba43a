// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// PluginKind tells how a plugin is instantiated in the generated bundler
// configuration.
type PluginKind string

const (
	// PluginConstructor is instantiated with `new Name(options)`.
	PluginConstructor PluginKind = "new"

	// PluginFactory is called as `Name(options)` or `Name([args...])`.
	PluginFactory PluginKind = "call"

	// PluginReference is passed as-is, without being called.
	PluginReference PluginKind = "ref"
)

// PluginSpec describes one build plugin: which module it comes from, how it
// is instantiated and with which parameters.
type PluginSpec struct {
	// Name is the identifier used in the generated configuration, optionally
	// qualified by the imported binding (e.g. "webpack.DefinePlugin").
	Name string `json:"name" yaml:"name"`

	// Module is the package the binding is imported from.
	Module string `json:"module" yaml:"module"`

	Kind PluginKind `json:"kind" yaml:"kind"`

	Options Options `json:"options,omitempty" yaml:"options,omitempty"`

	// Args is an ordered chain of nested plugins handed to a factory.
	Args Plugins `json:"args,omitempty" yaml:"args,omitempty"`
}

// Binding returns the identifier the plugin's module is imported as.
func (p PluginSpec) Binding() string {
	binding, _, _ := strings.Cut(p.Name, ".")
	return binding
}

// Clone returns a deep copy of p.
func (p PluginSpec) Clone() PluginSpec {
	out := p
	out.Options = p.Options.Clone()
	out.Args = p.Args.Clone()
	return out
}

// Plugins is an ordered plugin list. Plugins run in list order, so an
// element's index is part of the configuration's meaning.
type Plugins []PluginSpec

// Index returns the position of the first plugin called name, or -1.
func (p Plugins) Index(name string) int {
	for i, plugin := range p {
		if plugin.Name == name {
			return i
		}
	}

	return -1
}

// Names returns the plugin names in order.
func (p Plugins) Names() []string {
	names := make([]string, 0, len(p))
	for _, plugin := range p {
		names = append(names, plugin.Name)
	}

	return names
}

// Clone returns a deep copy of p.
func (p Plugins) Clone() Plugins {
	if p == nil {
		return nil
	}

	out := make(Plugins, len(p))
	for i, plugin := range p {
		out[i] = plugin.Clone()
	}

	return out
}

// Walk calls fn for every plugin in p and, depth first, for its Args.
func (p Plugins) Walk(fn func(PluginSpec)) {
	for _, plugin := range p {
		fn(plugin)
		plugin.Args.Walk(fn)
	}
}
