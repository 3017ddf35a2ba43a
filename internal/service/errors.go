// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoRuleMatched = errors.New("no transform rule matches the path")

	ErrValidationUnknownMode = errors.New("unknown build mode requested")
	ErrValidationEmptyPath   = errors.New("no module path provided")
	ErrValidationBundle      = errors.New("assembled configuration is invalid")
)
