// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/caesar/internal/config"
)

// isolate points the user config dir and working directory at a temp dir so
// no real caesar.yaml can leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != cfg.Default() {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if got.Dictionary.Source != "/usr/share/dict/words" {
		t.Fatalf("unexpected default source %q", got.Dictionary.Source)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yml := "dictionary:\n  source: /tmp/words.zst\nlanguage: de\n"
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte(yml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file, nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Dictionary.Source != "/tmp/words.zst" {
		t.Fatalf("expected file source, got %q", got.Dictionary.Source)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Dictionary.Table != "words" {
		t.Fatalf("unset keys should keep defaults, got %q", got.Dictionary.Table)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "caesar.yaml")
	if err := os.WriteFile(file, []byte("language: de\nlog:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CAESAR_LOG_LEVEL", "error")

	cmd := &cobra.Command{}
	cmd.Flags().String("lang", "en", "")
	if err := cmd.Flags().Set("lang", "fr"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil, map[string]string{"language": "lang"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "fr" {
		t.Fatalf("flag should win over file, got %q", got.Language)
	}
	if got.Log.Level != "error" {
		t.Fatalf("env should win over file, got %q", got.Log.Level)
	}
}

func TestLoadConfig_UnsetFlagDoesNotOverrideFile(t *testing.T) {
	tmp := isolate(t)
	if err := os.WriteFile(filepath.Join(tmp, "caesar.yaml"), []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := &cobra.Command{}
	cmd.Flags().String("lang", "en", "")

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil, map[string]string{"language": "lang"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected file value, got %q", got.Language)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("language: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Default()
	c.Language = "de"
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("wrote %s, expected %s", path, want)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("round trip lost language: %+v", got)
	}
}
