// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import "errors"

// ErrUnknownFormat is returned for a format other than json, yaml or js.
var ErrUnknownFormat = errors.New("unknown output format")
