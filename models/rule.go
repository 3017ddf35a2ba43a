// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"strings"
)

// Loader is one step of a transform pipeline, written the way the bundler
// expects it: a loader name optionally followed by "?" and a raw query.
// The query is kept verbatim so that existing loader strings survive a
// round trip unchanged.
type Loader struct {
	Name  string
	Query string
}

// String returns the loader in "name?query" form.
func (l Loader) String() string {
	if l.Query == "" {
		return l.Name
	}

	return l.Name + "?" + l.Query
}

// MarshalJSON encodes l as its string form.
func (l Loader) MarshalJSON() ([]byte, error) {
	return marshalJSONValue(l.String())
}

// MarshalYAML encodes l as its string form.
func (l Loader) MarshalYAML() (any, error) {
	return l.String(), nil
}

// TransformRule applies an ordered loader pipeline to every module whose
// path matches Test (and lies under Include, when set).
//
// Loaders run in the bundler's order (last to first); the slice order is
// significant and must never be sorted.
type TransformRule struct {
	// Test is the regular expression source matched against module paths.
	Test string `json:"test" yaml:"test"`

	// Extensions is the extension group Test was generated from. It is not
	// part of the bundler's schema and is only used by backends that key
	// loaders by extension.
	Extensions []string `json:"-" yaml:"-"`

	// Include restricts the rule to modules under this path.
	Include string `json:"include,omitempty" yaml:"include,omitempty"`

	Loaders []Loader `json:"loaders" yaml:"loaders"`
}

// Matches reports whether the module at path is handled by r.
// A Test that does not compile never matches.
func (r TransformRule) Matches(path string) bool {
	if r.Include != "" && !underPath(path, r.Include) {
		return false
	}

	re, err := regexp.Compile(r.Test)
	if err != nil {
		return false
	}

	return re.MatchString(path)
}

// Clone returns a deep copy of r.
func (r TransformRule) Clone() TransformRule {
	out := r
	out.Extensions = append([]string(nil), r.Extensions...)
	out.Loaders = append([]Loader(nil), r.Loaders...)
	return out
}

func underPath(path, root string) bool {
	if path == root {
		return true
	}

	return strings.HasPrefix(path, strings.TrimSuffix(root, "/")+"/")
}
