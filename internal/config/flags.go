// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagMode     = "mode"
	FlagAppPath  = "app-path"
	FlagHTMLPath = "html-path"
	FlagDistPath = "dist-path"
	FlagAddress  = "address"
	FlagHost     = "host"
	FlagPort     = "port"
	FlagCache    = "cache"
	FlagDevTool  = "devtool"
	FlagConfig   = "config"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines the build configuration flags on fs.
//
// Flags:
//
//	--mode         development | production
//	--app-path     application root module
//	--html-path    HTML template path
//	--dist-path    output directory
//	-a/--address   server address in format [host]:[port]
//	--host         server host
//	--port         server port
//	--cache        enable the module cache
//	--devtool      source map mode
//	-c/--config    JSON or YAML file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagMode, "", "Build mode: development or production")
	fs.String(FlagAppPath, "", "Application root module path")
	fs.String(FlagHTMLPath, "", "HTML template path")
	fs.String(FlagDistPath, "", "Output directory")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Server address host:port")
	fs.String(FlagHost, "", "Server host")
	fs.Int(FlagPort, 0, "Server port")
	fs.Bool(FlagCache, false, "Enable the bundler module cache")
	fs.String(FlagDevTool, "", "Source map mode")
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
}

// parseFlags builds a configuration layer from the flags on fs that were
// explicitly set. Flags left at their default do not override other layers.
func parseFlags(fs *pflag.FlagSet) (*BuildConfig, error) {
	cfg := &BuildConfig{}
	var errs []error

	if value, ok := changedString(fs, FlagMode); ok {
		mode, err := models.ParseMode(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("--%s: %w", FlagMode, err))
		}
		cfg.Mode = mode
	}
	if value, ok := changedString(fs, FlagAppPath); ok {
		cfg.Paths.AppPath = value
	}
	if value, ok := changedString(fs, FlagHTMLPath); ok {
		cfg.Paths.HTMLPath = value
	}
	if value, ok := changedString(fs, FlagDistPath); ok {
		cfg.Paths.DistPath = value
	}

	if f := fs.Lookup(FlagAddress); f != nil && f.Changed {
		if addr, ok := f.Value.(*NetAddress); ok {
			cfg.Server.Host = addr.Host
			cfg.Server.Port = addr.Port
		}
	}
	if value, ok := changedString(fs, FlagHost); ok {
		cfg.Server.Host = value
	}
	if f := fs.Lookup(FlagPort); f != nil && f.Changed {
		port, err := fs.GetInt(FlagPort)
		if err != nil {
			errs = append(errs, fmt.Errorf("--%s: %w", FlagPort, err))
		}
		cfg.Server.Port = port
	}

	if f := fs.Lookup(FlagCache); f != nil && f.Changed {
		cache, err := fs.GetBool(FlagCache)
		if err != nil {
			errs = append(errs, fmt.Errorf("--%s: %w", FlagCache, err))
		}
		cfg.Cache = &cache
	}
	if value, ok := changedString(fs, FlagDevTool); ok {
		cfg.DevTool = value
	}
	if value, ok := changedString(fs, FlagConfig); ok {
		cfg.ConfigFilePath = value
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error parsing flags: %w", errors.Join(errs...))
	}

	return cfg, nil
}

func changedString(fs *pflag.FlagSet, name string) (string, bool) {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}

	return f.Value.String(), true
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The port must be in range and the host must be an IP address or hostname,
// as for --host.
func (a *NetAddress) Set(s string) error {
	host, portValue, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return err
	}

	if port < 1 || port > maxPort {
		return errors.New("port number must be between 1 and 65535")
	}

	if !validHost(host) {
		return fmt.Errorf("incorrect host %q: need an IP address or hostname", host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
