// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".bstree.yaml"

const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

type KeysConfig struct {
	Type string `yaml:"type"`
}

type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type FilterConfig struct {
	Size   uint `yaml:"size"`
	Hashes uint `yaml:"hashes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type OutputConfig struct {
	Color bool `yaml:"color"`
}

type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Cache  CacheConfig  `yaml:"cache"`
	Filter FilterConfig `yaml:"filter"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Type: keyTypeInt,
	},
	Cache: CacheConfig{
		TTL:     10 * time.Minute,
		Cleanup: 5 * time.Minute,
	},
	Filter: FilterConfig{
		Size:   8192,
		Hashes: 4,
	},
	Log: LogConfig{
		Level: "info",
	},
	Output: OutputConfig{
		Color: true,
	},
}

// LoadConfig reads ~/.bstree.yaml. A missing home directory or config file
// yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the file at configPath over a copy of the defaults, so
// fields the file leaves out keep their default values. On a read or parse
// error the defaults are returned together with the error.
func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	parsed := defaultConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return &cfg, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if err := parsed.validate(); err != nil {
		return &cfg, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &parsed, nil
}

func (c *Config) validate() error {
	switch c.Keys.Type {
	case keyTypeInt, keyTypeString:
	default:
		return fmt.Errorf("keys.type must be %q or %q, got %q", keyTypeInt, keyTypeString, c.Keys.Type)
	}
	if c.Filter.Size == 0 || c.Filter.Hashes == 0 {
		return fmt.Errorf("filter.size and filter.hashes must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the effective configuration, writing the default
// file first when none exists.
func displaySettings(w io.Writer, configPath string, st styles) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	cfg, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, st.heading("bstree configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	rows := [][2]string{
		{"keys.type", cfg.Keys.Type},
		{"cache.ttl", cfg.Cache.TTL.String()},
		{"cache.cleanup", cfg.Cache.Cleanup.String()},
		{"filter.size", fmt.Sprint(cfg.Filter.Size)},
		{"filter.hashes", fmt.Sprint(cfg.Filter.Hashes)},
		{"log.level", cfg.Log.Level},
		{"output.color", fmt.Sprint(cfg.Output.Color)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s: %s\n", st.label(row[0]), row[1])
	}
	return nil
}
