// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/utils"
	"github.com/MKhiriev/go-bundle-config/models"
)

const (
	configPath  = "/api/config/{mode}"
	diffPath    = "/api/config/diff"
	versionPath = "/api/version"
)

type httpConfigClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConfigClient constructs a [ConfigClient] for the server at address.
// address may omit the scheme, in which case http is assumed.
func NewHTTPConfigClient(address string, timeout time.Duration, logger *logger.Logger) (ConfigClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpConfigClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpConfigClient) FetchConfig(ctx context.Context, mode models.Mode, format encoder.Format) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", format.ContentType()).
		SetPathParam("mode", mode.String()).
		SetQueryParam("format", string(format)).
		Get(configPath)
	if err != nil {
		return nil, fmt.Errorf("fetch config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("mode", mode.String()).
		Str("format", string(format)).
		Int("size", len(resp.Body())).
		Msg("configuration fetched")

	return resp.Body(), nil
}

func (h *httpConfigClient) FetchDiff(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(diffPath)
	if err != nil {
		return "", fmt.Errorf("fetch diff request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpConfigClient) FetchVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("fetch version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
