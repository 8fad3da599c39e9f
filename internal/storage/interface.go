// Package storage defines where reminder settings are persisted.
package storage

import (
	"path/filepath"
	"strings"

	apperrors "github.com/julianstephens/eyerest/internal/errors"
	"github.com/julianstephens/eyerest/internal/models"
)

// ErrNotInitialized is returned by Load before 'eyerest init' created the store.
var ErrNotInitialized = apperrors.ErrNotInitialized

// Provider is a settings store with an explicit lifecycle. It satisfies
// reminder.SettingsStore.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	LoadSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by stores backed by a versioned SQL schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}

// Backend identifies the store implementation a --config value selects.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendYAML     Backend = "yaml"
)

// DetectBackend picks the backend for a config value: a PostgreSQL URL or
// key=value DSN, a .yaml/.yml file, or otherwise a SQLite database path.
func DetectBackend(config string) Backend {
	trimmed := strings.TrimSpace(config)
	switch {
	case strings.HasPrefix(trimmed, "postgres://"), strings.HasPrefix(trimmed, "postgresql://"):
		return BackendPostgres
	case strings.Contains(trimmed, "host=") || strings.Contains(trimmed, "dbname="):
		return BackendPostgres
	}

	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".yaml", ".yml":
		return BackendYAML
	default:
		return BackendSQLite
	}
}

// Fallback is what a store returns before anything was saved.
func Fallback() models.Settings {
	return models.DefaultSettings()
}
