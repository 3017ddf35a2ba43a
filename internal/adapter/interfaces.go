// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the configuration API.
//
// [ConfigClient] fetches rendered configurations from a running server.
// Non-2xx responses are mapped to [ErrUnexpectedStatus], wrapping a more
// specific sentinel where one exists, so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_client_mock.go -package=mock

// ConfigClient fetches configurations from a go-bundle-config server.
type ConfigClient interface {
	// FetchConfig returns the configuration of mode rendered in format.
	FetchConfig(ctx context.Context, mode models.Mode, format encoder.Format) ([]byte, error)

	// FetchDiff returns the development to production diff report.
	FetchDiff(ctx context.Context) (string, error)

	// FetchVersion returns the server build version.
	FetchVersion(ctx context.Context) (string, error)
}
