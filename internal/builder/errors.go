// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "errors"

var (
	ErrBuildFailed   = errors.New("esbuild build failed")
	ErrNoEntryPoints = errors.New("no local entry points to build")
)
