package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/keyring"
	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/storage"
	"github.com/julianstephens/eyerest/internal/storage/file"
	"github.com/julianstephens/eyerest/internal/storage/postgres"
	"github.com/julianstephens/eyerest/internal/storage/sqlite"
)

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenStore picks the settings store for a --config value. When config is
// the default path, a connection string from the environment or the keyring
// takes precedence so a configured PostgreSQL store is used without flags.
// Connection strings given on the command line must not carry a password.
func OpenStore(config string) (storage.Provider, error) {
	config = strings.TrimSpace(config)

	if config == "" || config == constants.DefaultConfigPath {
		connStr, source, err := keyring.ResolveConnectionString()
		if err != nil {
			logger.Warn("Failed to read connection string, using local storage", "error", err)
		} else if connStr != "" {
			logger.Debug("Using PostgreSQL connection string", "source", source)
			return postgres.New(connStr), nil
		}
		config = constants.DefaultConfigPath
	}

	switch storage.DetectBackend(config) {
	case storage.BackendPostgres:
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with 'eyerest keyring set' or export %s instead",
					err, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(config), nil
	case storage.BackendYAML:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return file.New(path), nil
	default:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// IsFileBacked reports whether the store keeps its data in a local file.
func IsFileBacked(store storage.Provider) bool {
	switch store.(type) {
	case *sqlite.Store, *file.Store:
		return true
	default:
		return false
	}
}
