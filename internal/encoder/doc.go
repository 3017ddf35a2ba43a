// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoder renders a [models.BundlerConfiguration] as JSON, YAML or a
// webpack.config.js module. Output is deterministic: keys, rules and plugins
// appear in the order they were assembled.
package encoder
