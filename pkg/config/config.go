// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads shell settings from a cmdhost.toml (or YAML) file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	FileName      = "cmdhost.toml"
	DefaultPrompt = ">> "

	envPrompt = "CMDHOST_PROMPT"
)

// Config holds the shell settings.
type Config struct {
	Prompt  string `toml:"prompt,omitempty" yaml:"prompt,omitempty"`
	Color   string `toml:"color,omitempty" yaml:"color,omitempty"`
	Verbose bool   `toml:"verbose,omitempty" yaml:"verbose,omitempty"`

	// Path is the file the settings were read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Prompt: DefaultPrompt, Color: "auto"}
}

// Load returns the settings for the shell. If path is empty, cmdhost.toml is
// searched for from startDir upwards; a missing file is not an error.
// Environment overrides are applied last.
func Load(path, startDir string) (Config, error) {
	cfg := Default()
	if path == "" {
		found, err := findFile(startDir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		path = found
	}
	if path != "" {
		fileCfg, err := ReadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = merge(cfg, fileCfg)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// ReadFile decodes a settings file. Files ending in .yaml or .yml are read
// as YAML, everything else as TOML.
func ReadFile(path string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.Path = path
	return cfg, nil
}

func merge(base, over Config) Config {
	if over.Prompt != "" {
		base.Prompt = over.Prompt
	}
	if over.Color != "" {
		base.Color = over.Color
	}
	if over.Verbose {
		base.Verbose = true
	}
	base.Path = over.Path
	return base
}

func applyEnv(cfg *Config) {
	if p := os.Getenv(envPrompt); p != "" {
		cfg.Prompt = p
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = "never"
	}
}

func findFile(startDir string) (string, error) {
	if startDir == "" {
		return "", os.ErrNotExist
	}
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
