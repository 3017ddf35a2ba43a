// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks assembled bundler configurations before they
// leave the service layer.
//
// A Validator receives the value to check and, optionally, the names of the
// checks to run (field-level scoping). Services call it after assembly so
// that transports never see a configuration that breaks ordering or entry
// rules.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
