// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builder runs an assembled bundler configuration through esbuild.
//
// [Translate] maps the configuration onto esbuild build options. Parts with
// no esbuild equivalent, such as multi-loader style chains and the HTML
// plugin, are reported back to the caller instead of failing the
// translation. [Builder.Build] runs the translated build and reports every
// esbuild error through the logger.
package builder
