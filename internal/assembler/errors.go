// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import "errors"

// ErrInvalidBuildConfig wraps every validation failure of the input build
// configuration. The specific cause is joined to it.
var ErrInvalidBuildConfig = errors.New("invalid build configuration")
