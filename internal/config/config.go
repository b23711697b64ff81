// Package config loads and saves the settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the on-disk configuration. Command-line flags override it.
type Settings struct {
	StartDir        string `json:"start_dir"`
	Theme           string `json:"theme"` // "light" or "dark"
	ShowHidden      bool   `json:"show_hidden"`
	AllFiles        bool   `json:"all_files"`
	EngineConfigDir string `json:"engine_config_dir"`
	DiscordAppID    string `json:"discord_app_id"`
	LogLevel        string `json:"log_level"`
}

func Default() *Settings {
	return &Settings{
		Theme:    ThemeLight,
		LogLevel: "info",
	}
}

// DefaultPath returns settings.json under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "pickplay", "settings.json"), nil
}

func EnsureDir(path string) error {
	d := filepath.Dir(path)
	if d == "." || d == "" {
		return nil
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return fmt.Errorf("create settings dir %s: %w", d, err)
	}
	return nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s := Default()
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if s.Theme != ThemeDark {
		s.Theme = ThemeLight
	}
	if strings.TrimSpace(s.LogLevel) == "" {
		s.LogLevel = "info"
	}
}

func Save(path string, s *Settings) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
