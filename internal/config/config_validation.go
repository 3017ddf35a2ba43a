// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"regexp"
)

const (
	maxPort         = 65535
	maxHostnameSize = 253
)

// hostnamePattern matches dot separated labels of letters, digits and
// inner hyphens, each at most 63 characters.
var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// validHost reports whether host is an IP address or a hostname. The same
// rule applies to --address, --host, SERVER_HOST and config files.
func validHost(host string) bool {
	if net.ParseIP(host) != nil {
		return true
	}

	return len(host) <= maxHostnameSize && hostnamePattern.MatchString(host)
}

// Validate checks that the merged [BuildConfig] can be turned into a bundler
// configuration. All problems are reported together, each wrapping one of
// the sentinel errors from errors.go.
func (cfg *BuildConfig) Validate() error {
	var errs []error

	if !cfg.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("%w: mode %q", ErrInvalidMode, cfg.Mode))
	}

	if cfg.Paths.AppPath == "" {
		errs = append(errs, fmt.Errorf("%w: app path is empty", ErrInvalidPathsConfig))
	}
	if cfg.Paths.HTMLPath == "" {
		errs = append(errs, fmt.Errorf("%w: html template path is empty", ErrInvalidPathsConfig))
	}
	if cfg.Paths.DistPath == "" {
		errs = append(errs, fmt.Errorf("%w: dist path is empty", ErrInvalidPathsConfig))
	}

	switch {
	case cfg.Server.Host == "":
		errs = append(errs, fmt.Errorf("%w: host is empty", ErrInvalidServerConfig))
	case !validHost(cfg.Server.Host):
		errs = append(errs, fmt.Errorf("%w: host %q is not an IP address or hostname", ErrInvalidServerConfig, cfg.Server.Host))
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		errs = append(errs, fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfig, cfg.Server.Port))
	}

	return errors.Join(errs...)
}
