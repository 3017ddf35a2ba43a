// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	errEmptyAddress = errors.New("empty address")
	errNoHost       = errors.New("address must include host and scheme")
)
