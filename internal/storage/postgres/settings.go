package postgres

import (
	"fmt"

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
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count settings: %w", err)
	}
	return count > 0, nil
}

func (s *Store) LoadSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("postgresql: %w", storage.ErrNotInitialized)
	}
	data, err := s.readSettings()
	if err != nil {
		return models.Settings{}, err
	}
	return models.MapToSettings(data, storage.Fallback())
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("postgresql: %w", storage.ErrNotInitialized)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	data := models.SettingsToMap(settings)
	for _, key := range models.SettingKeys() {
		if _, err := stmt.Exec(key, data[key]); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	return tx.Commit()
}
