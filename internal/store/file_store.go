package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
)

// FileStore keeps one JSON file per key under a data directory.
// Writes go through a temp file + rename so a crash mid-write never
// leaves a half-written collection behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string, dest interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return apperror.NewStore(key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Corrupt blob — degrade to the empty default rather than block startup.
		log.Warn().Str("key", key).Err(err).Msg("corrupt store blob ignored")
		return nil
	}
	return nil
}

func (s *FileStore) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return apperror.NewStore(key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return apperror.NewStore(key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return apperror.NewStore(key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperror.NewStore(key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return apperror.NewStore(key, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
