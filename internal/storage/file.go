package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/models"
)

// FileStore keeps the state blob in a single JSON file.
type FileStore struct {
	path   string
	logger *logrus.Logger
}

// NewFileStore creates a file-backed store at path, creating the parent
// directory if needed.
func NewFileStore(path string, logger *logrus.Logger) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating storage directory: %w", err)
		}
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Load reads the state file. A missing or malformed file yields an empty
// default state; corruption is logged but never fatal.
func (s *FileStore) Load() (*models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewAppState(), nil
		}
		return nil, fmt.Errorf("error reading state file: %w", err)
	}

	state := models.NewAppState()
	if err := json.Unmarshal(data, state); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("Malformed state file, starting from empty state")
		return models.NewAppState(), nil
	}
	return state, nil
}

// Save writes the state atomically via a temp file and rename.
func (s *FileStore) Save(state *models.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("error replacing state file: %w", err)
	}
	return nil
}
