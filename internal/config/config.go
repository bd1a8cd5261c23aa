// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package config resolves Caesar's settings from defaults, an optional YAML
// file, CAESAR_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Dictionary Dictionary `mapstructure:"dictionary" yaml:"dictionary"`
	Language   string     `mapstructure:"language" yaml:"language"`
	Log        Log        `mapstructure:"log" yaml:"log"`
}

// Dictionary points at the word list used for key and mode detection.
type Dictionary struct {
	// Source is a file path (optionally .zst or .gz) or a sqlite://,
	// postgres:// or mysql:// URL.
	Source string `mapstructure:"source" yaml:"source"`
	Table  string `mapstructure:"table" yaml:"table"`
	Column string `mapstructure:"column" yaml:"column"`
}

// Log controls diagnostic output on stderr.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the built-in settings keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"dictionary.source": "/usr/share/dict/words",
		"dictionary.table":  "words",
		"dictionary.column": "word",
		"language":          "en",
		"log.level":         "warn",
	}
}

// Default returns a Config holding the built-in settings.
func Default() Config {
	d := Defaults()
	return Config{
		Dictionary: Dictionary{
			Source: d["dictionary.source"].(string),
			Table:  d["dictionary.table"].(string),
			Column: d["dictionary.column"].(string),
		},
		Language: d["language"].(string),
		Log:      Log{Level: d["log.level"].(string)},
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Caesar")
		default:
			configDir = "/etc/caesar"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "caesar")
	}

	return filepath.Join(configDir, "caesar.yaml"), nil
}

// LoadConfig resolves a T from defaults, the first caesar.yaml found (or
// configFile when set), the environment and the flags of cmd. flagKeys maps
// config keys to flag names; only flags the user actually set override
// lower layers. A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string, flagKeys map[string]string) (T, error) {
	var c T
	v := viper.New()

	// 1. Defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. File search paths
	v.SetConfigName("caesar")
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 3. Primary config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	// 4. Environment: CAESAR_DICTIONARY_SOURCE, CAESAR_LANGUAGE, ...
	v.SetEnvPrefix("caesar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. Flags
	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile serialises c to the user (or system) config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
