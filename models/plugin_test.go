// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPlugins() Plugins {
	return Plugins{
		{Name: "webpack.DefinePlugin", Module: "webpack", Kind: PluginConstructor, Options: Opts("x", 1)},
		{
			Name: "poststylus", Module: "poststylus", Kind: PluginFactory,
			Args: Plugins{
				{Name: "normalize", Kind: PluginReference},
				{Name: "rucksack", Kind: PluginFactory, Options: Opts("fallback", true)},
			},
		},
	}
}

func TestPluginSpec_Binding(t *testing.T) {
	assert.Equal(t, "webpack", PluginSpec{Name: "webpack.optimize.DedupePlugin"}.Binding())
	assert.Equal(t, "HtmlWebpackPlugin", PluginSpec{Name: "HtmlWebpackPlugin"}.Binding())
}

func TestPlugins_IndexNames(t *testing.T) {
	p := testPlugins()

	assert.Equal(t, 1, p.Index("poststylus"))
	assert.Equal(t, -1, p.Index("normalize"))
	assert.Equal(t, []string{"webpack.DefinePlugin", "poststylus"}, p.Names())
}

func TestPlugins_Walk(t *testing.T) {
	var visited []string
	testPlugins().Walk(func(p PluginSpec) { visited = append(visited, p.Name) })

	assert.Equal(t, []string{"webpack.DefinePlugin", "poststylus", "normalize", "rucksack"}, visited)
}

func TestPlugins_CloneIsDeep(t *testing.T) {
	orig := testPlugins()

	clone := orig.Clone()
	clone[0].Options[0].Value = 2
	clone[1].Args[1].Options[0].Value = false
	clone[1].Args[0].Name = "changed"

	v, _ := orig[0].Options.Get("x")
	assert.Equal(t, 1, v)
	v, _ = orig[1].Args[1].Options.Get("fallback")
	assert.Equal(t, true, v)
	assert.Equal(t, "normalize", orig[1].Args[0].Name)
	assert.Nil(t, Plugins(nil).Clone())
}
