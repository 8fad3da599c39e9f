// Package file stores settings as a flat YAML document, for users who keep
// their configuration in a dotfiles repository.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/storage"
)

// document fixes the key order of written files. Reads go through a plain
// map so partial files written by hand fall back key by key.
type document struct {
	Enabled                 bool    `yaml:"enabled"`
	IntervalMinutes         float64 `yaml:"interval_minutes"`
	CueDurationSeconds      float64 `yaml:"cue_duration_seconds"`
	AccentColor             string  `yaml:"accent_color"`
	RestrictToOfficeHours   bool    `yaml:"restrict_to_office_hours"`
	OfficeHoursStartMinutes int     `yaml:"office_hours_start_minutes"`
	OfficeHoursEndMinutes   int     `yaml:"office_hours_end_minutes"`
}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init writes the default settings unless the file already exists.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		_, err := s.read()
		return err
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	return s.SaveSettings(storage.Fallback())
}

// Load checks the file exists and parses.
func (s *Store) Load() error {
	_, err := s.read()
	return err
}

func (s *Store) Close() error { return nil }

func (s *Store) GetConfigPath() string { return s.path }

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, storage.ErrNotInitialized)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	data := make(map[string]string, len(values))
	for key, value := range values {
		if value == nil {
			continue
		}
		data[key] = fmt.Sprint(value)
	}
	return data, nil
}

func (s *Store) LoadSettings() (models.Settings, error) {
	data, err := s.read()
	if err != nil {
		return models.Settings{}, err
	}
	return models.MapToSettings(data, storage.Fallback())
}

// SaveSettings normalizes settings and replaces the file atomically.
func (s *Store) SaveSettings(settings models.Settings) error {
	n := settings.Normalized()
	out, err := yaml.Marshal(document{
		Enabled:                 n.Enabled(),
		IntervalMinutes:         n.IntervalMinutes(),
		CueDurationSeconds:      n.CueDurationSeconds(),
		AccentColor:             string(n.AccentColor()),
		RestrictToOfficeHours:   n.RestrictToOfficeHours(),
		OfficeHoursStartMinutes: n.OfficeHoursStartMinutes(),
		OfficeHoursEndMinutes:   n.OfficeHoursEndMinutes(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return writeAtomic(s.path, out)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+constants.AppName+"-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
