// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-bundle-config/models"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a configuration file. The same
// structure is read from JSON and YAML.
type FileConfig struct {
	Mode string `json:"mode" yaml:"mode"`

	Paths struct {
		App  string `json:"app" yaml:"app"`
		HTML string `json:"html" yaml:"html"`
		Dist string `json:"dist" yaml:"dist"`
	} `json:"paths,omitempty" yaml:"paths,omitempty"`

	Server struct {
		Host string `json:"host" yaml:"host"`
		Port int    `json:"port" yaml:"port"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Cache   *bool  `json:"cache,omitempty" yaml:"cache,omitempty"`
	DevTool string `json:"devtool" yaml:"devtool"`
}

// parseFile reads a configuration layer from path. The format is chosen by
// extension: .json, or .yaml/.yml.
func parseFile(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return fileCfg.toBuildConfig()
}

func (f FileConfig) toBuildConfig() (*BuildConfig, error) {
	cfg := &BuildConfig{
		Paths: Paths{
			AppPath:  f.Paths.App,
			HTMLPath: f.Paths.HTML,
			DistPath: f.Paths.Dist,
		},
		Server: Server{
			Host: f.Server.Host,
			Port: f.Server.Port,
		},
		Cache:   f.Cache,
		DevTool: f.DevTool,
	}

	if f.Mode != "" {
		mode, err := models.ParseMode(f.Mode)
		if err != nil {
			return nil, fmt.Errorf("error decoding config file mode: %w", err)
		}
		cfg.Mode = mode
	}

	return cfg, nil
}
