// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
)

// Env carries the process-environment values the rest of the program needs.
// Only the entry point builds it from the real environment.
type Env struct {
	HomeDir   string
	ConfigDir string
	StateDir  string
}

// EnvFromOS reads the home, config and XDG state directories. Missing values
// are left empty.
func EnvFromOS() Env {
	var env Env
	if home, err := os.UserHomeDir(); err == nil {
		env.HomeDir = home
	}
	if dir, err := os.UserConfigDir(); err == nil {
		env.ConfigDir = dir
	}

	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		env.StateDir = dir
	} else if env.HomeDir != "" {
		env.StateDir = filepath.Join(env.HomeDir, ".local", "state")
	}
	return env
}
