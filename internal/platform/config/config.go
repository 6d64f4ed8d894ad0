package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "pombar/internal/platform/errors"
)

// Settings is the fully resolved runtime configuration. Precedence, lowest
// first: built-in defaults, the optional settings file, explicitly set
// command-line flags.
type Settings struct {
	WorkMinutes      int
	BreakMinutes     int
	LongBreakMinutes int
	StartSession     int
	WorkCommand      string
	BreakCommand     string
	BarType          string
	Notify           bool
	RecordPath       string
}

// fileSettings mirrors the YAML settings file. Pointer fields so that an
// absent key leaves the current value alone.
type fileSettings struct {
	WorkMinutes      *int    `yaml:"work_minutes"`
	BreakMinutes     *int    `yaml:"break_minutes"`
	LongBreakMinutes *int    `yaml:"long_break_minutes"`
	WorkCommand      *string `yaml:"cmd_work"`
	BreakCommand     *string `yaml:"cmd_break"`
	BarType          *string `yaml:"bar"`
	Notify           *bool   `yaml:"notify"`
}

func Default() Settings {
	return Settings{
		WorkMinutes:      25,
		BreakMinutes:     5,
		LongBreakMinutes: 15,
		StartSession:     1,
		BarType:          "none",
		RecordPath:       filepath.Join(DataHome(), "pombar", "record.json"),
	}
}

// DataHome resolves $XDG_DATA_HOME with the usual ~/.local/share fallback.
func DataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".local/share"
	}
	return filepath.Join(home, ".local", "share")
}

// ConfigHome resolves $XDG_CONFIG_HOME with the ~/.config fallback.
func ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}
	return filepath.Join(home, ".config")
}

// FilePath is where the optional settings file is looked up.
func FilePath() string {
	return filepath.Join(ConfigHome(), "pombar", "config.yaml")
}

// ApplyFile overlays the settings file, when present, onto s. Fields whose
// flag was set explicitly (per flagChanged) keep the flag value.
func ApplyFile(s *Settings, flagChanged func(name string) bool) error {
	raw, err := os.ReadFile(FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}
	var file fileSettings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse settings file %s: %w", FilePath(), err)
	}

	setInt := func(flag string, dst *int, src *int) {
		if src != nil && !flagChanged(flag) {
			*dst = *src
		}
	}
	setString := func(flag string, dst *string, src *string) {
		if src != nil && !flagChanged(flag) {
			*dst = *src
		}
	}
	setInt("work", &s.WorkMinutes, file.WorkMinutes)
	setInt("break", &s.BreakMinutes, file.BreakMinutes)
	setInt("long-break", &s.LongBreakMinutes, file.LongBreakMinutes)
	setString("cmd-work", &s.WorkCommand, file.WorkCommand)
	setString("cmd-break", &s.BreakCommand, file.BreakCommand)
	setString("bar", &s.BarType, file.BarType)
	if file.Notify != nil && !flagChanged("notify") {
		s.Notify = *file.Notify
	}
	return nil
}

// Validate rejects bad durations and commands before any state is touched.
func (s Settings) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"work minutes", s.WorkMinutes},
		{"break minutes", s.BreakMinutes},
		{"long break minutes", s.LongBreakMinutes},
		{"session number", s.StartSession},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %d: %w", check.name, check.value, apperrors.ErrInvalidInput)
		}
	}
	for _, command := range []string{s.WorkCommand, s.BreakCommand} {
		if err := validateCommand(command); err != nil {
			return err
		}
	}
	return nil
}

// validateCommand accepts the empty command; otherwise the first word must
// resolve in PATH.
func validateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	head := strings.Fields(command)[0]
	if _, err := exec.LookPath(head); err != nil {
		return fmt.Errorf("command %q not found in PATH: %w", head, apperrors.ErrInvalidInput)
	}
	return nil
}
