package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/storage"
)

func (s *Store) readSettings() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}
	return data, nil
}

func (s *Store) hasSettings() (bool, error) {
	data, err := s.readSettings()
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

// LoadSettings returns the stored settings, or the defaults when nothing was saved.
func (s *Store) LoadSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("%s: %w", s.path, storage.ErrNotInitialized)
	}
	data, err := s.readSettings()
	if err != nil {
		return models.Settings{}, err
	}
	return models.MapToSettings(data, storage.Fallback())
}

// SaveSettings normalizes settings and writes every key in one transaction.
func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("%s: %w", s.path, storage.ErrNotInitialized)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	data := models.SettingsToMap(settings)
	for _, key := range models.SettingKeys() {
		if _, err := stmt.Exec(key, data[key], now); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	return tx.Commit()
}
