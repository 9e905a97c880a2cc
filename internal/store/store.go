// Package store is the persistence boundary: a single JSON document holding
// the full project list, written best-effort after every mutation.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/secheng722/s-todo/internal/config"
	"github.com/secheng722/s-todo/internal/models"
	"github.com/secheng722/s-todo/internal/util"
)

// Store loads and saves the project list. The interactive model receives a
// Store at construction so the state machine can be tested in memory.
type Store interface {
	Load() (models.AppData, error)
	Save(models.AppData) error
}

// FileStore persists the document as pretty-printed JSON at a fixed path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is ~/.config/s_todo/data.json, or ./s_todo_data.json when no
// home directory is available.
func DefaultPath() string {
	if dir, ok := util.ConfigDir(config.AppName); ok {
		return filepath.Join(dir, config.DataFileName)
	}
	return config.FallbackDataFileName
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document. Any error (missing file, unreadable file, bad
// JSON) is returned to the caller, which substitutes the built-in default.
func (s *FileStore) Load() (models.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.AppData{}, err
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.AppData{}, err
	}
	return data, nil
}

// Save writes the document, creating parent directories as needed.
func (s *FileStore) Save(data models.AppData) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
