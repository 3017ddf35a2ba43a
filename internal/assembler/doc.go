// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assembler builds a [models.BundlerConfiguration] from a validated
// [config.BuildConfig].
//
// Assembly is a single synchronous pass: the common skeleton (target,
// devtool, resolution), entries and output, the ordered transform rules
// (script, style, font, image), the ordered plugin list, and finally the
// overlay for the selected mode. Overlays are pure functions returning a
// [Patch] that is applied to a copy of the common configuration, so the
// same input always yields a structurally equal result.
package assembler
