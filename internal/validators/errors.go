// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingEntry         = errors.New("required entry is missing or empty")
	ErrDefinePluginNotFirst = errors.New("define plugin must be the first plugin")
	ErrInvalidPluginKind    = errors.New("invalid plugin kind")
	ErrInvalidRuleTest      = errors.New("rule test is not a valid regular expression")
	ErrEmptyLoaders         = errors.New("rule has no loaders")
	ErrInvalidOutput        = errors.New("output path and filename are required")
)
