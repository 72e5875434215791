// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the nt configuration file: locating it, decoding
// TOML or YAML into a RuntimeConfig, and persisting non-default settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNoteFileLiteral       = "~/daybook.txt"
	DefaultDatetimeFormatPattern = "%H:%M - %-m/%-d/%y"
	ConfigFileName               = "nt.toml"
	appDirName                   = "nt"
)

// ErrMissingHomeDirectory is returned when a path needs the home directory
// but none is known.
var ErrMissingHomeDirectory = errors.New("unable to locate user home directory")

// Format selects the on-disk encoding of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks YAML for .yaml/.yml files and TOML otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// fileConfig is the on-disk shape. Both keys are optional.
type fileConfig struct {
	NoteFile       string `toml:"note_file,omitempty" yaml:"note_file,omitempty"`
	DatetimeFormat string `toml:"datetime_format,omitempty" yaml:"datetime_format,omitempty"`
}

// RuntimeConfig is the resolved configuration handed to the note commands.
type RuntimeConfig struct {
	// NoteFileLiteral is the note_file value as written, possibly "~/...".
	NoteFileLiteral string

	// NoteFilePath is NoteFileLiteral with a leading "~/" expanded.
	NoteFilePath string

	// DatetimeFormat is the strftime pattern used for entry timestamps.
	DatetimeFormat string
}

// Default returns the built-in configuration for the given home directory.
func Default(home string) RuntimeConfig {
	return RuntimeConfig{
		NoteFileLiteral: DefaultNoteFileLiteral,
		NoteFilePath:    ExpandTilde(DefaultNoteFileLiteral, home),
		DatetimeFormat:  DefaultDatetimeFormatPattern,
	}
}

// DefaultConfigPath returns <config dir>/nt/nt.toml.
func DefaultConfigPath(env Env) (string, error) {
	if env.ConfigDir == "" {
		return "", fmt.Errorf("failed to get user config directory: %w", ErrMissingHomeDirectory)
	}
	return filepath.Join(env.ConfigDir, appDirName, ConfigFileName), nil
}

// Parse decodes config data and fills in defaults. It never touches the
// filesystem.
func Parse(data []byte, format Format, home string) (RuntimeConfig, error) {
	var fc fileConfig
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return RuntimeConfig{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return RuntimeConfig{}, fmt.Errorf("toml parse error: %w", err)
		}
	}

	cfg := RuntimeConfig{
		NoteFileLiteral: fc.NoteFile,
		DatetimeFormat:  fc.DatetimeFormat,
	}
	if cfg.NoteFileLiteral == "" {
		cfg.NoteFileLiteral = DefaultNoteFileLiteral
	}
	if cfg.DatetimeFormat == "" {
		cfg.DatetimeFormat = DefaultDatetimeFormatPattern
	}
	if strings.HasPrefix(cfg.NoteFileLiteral, "~/") && home == "" {
		return RuntimeConfig{}, ErrMissingHomeDirectory
	}
	cfg.NoteFilePath = ExpandTilde(cfg.NoteFileLiteral, home)
	return cfg, nil
}

// Load reads the default config file. A missing file yields the defaults.
func Load(env Env) (RuntimeConfig, error) {
	path, err := DefaultConfigPath(env)
	if err != nil {
		return RuntimeConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if env.HomeDir == "" {
				return RuntimeConfig{}, ErrMissingHomeDirectory
			}
			return Default(env.HomeDir), nil
		}
		return RuntimeConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatForPath(path), env.HomeDir)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFrom reads an explicitly chosen config file, which must exist.
func LoadFrom(path string, env Env) (RuntimeConfig, error) {
	data, err := os.ReadFile(ExpandTilde(path, env.HomeDir))
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatForPath(path), env.HomeDir)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// marshal encodes only the settings that differ from the defaults, so an
// all-default config produces an empty document. nt itself never rewrites
// the user's config; marshal and save back the round-trip tests.
func marshal(cfg RuntimeConfig, format Format) ([]byte, error) {
	var fc fileConfig
	if cfg.NoteFileLiteral != DefaultNoteFileLiteral {
		fc.NoteFile = cfg.NoteFileLiteral
	}
	if cfg.DatetimeFormat != DefaultDatetimeFormatPattern {
		fc.DatetimeFormat = cfg.DatetimeFormat
	}
	if fc == (fileConfig{}) {
		return []byte{}, nil
	}

	if format == FormatYAML {
		data, err := yaml.Marshal(fc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// save writes cfg to path, creating the directory when needed.
func save(cfg RuntimeConfig, path string) error {
	data, err := marshal(cfg, FormatForPath(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	// rwxr-x---
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	// rw-r-----
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ExpandTilde expands a leading "~/" (or a bare "~") against home. The
// "~user/..." form, relative paths and absolute paths are returned as-is.
func ExpandTilde(path, home string) string {
	if path == "~" {
		return home
	}
	if !strings.HasPrefix(path, "~/") || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
