package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pombar/internal/modules/record/domain"
	recordout "pombar/internal/modules/record/port/out"
	apperrors "pombar/internal/platform/errors"
)

// FileRecordStore keeps the whole record in one JSON object on disk.
type FileRecordStore struct {
	path string
}

func NewFileRecordStore(path string) recordout.Store {
	return &FileRecordStore{path: path}
}

// EnsureExists creates parent directories and seeds an empty store when
// the file is absent. Idempotent.
func (s *FileRecordStore) EnsureExists(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat record file: %w", err)
	}
	if err := os.WriteFile(s.path, []byte("{}"), 0o644); err != nil {
		return fmt.Errorf("seed record file: %w", err)
	}
	return nil
}

func (s *FileRecordStore) Load(_ context.Context) (domain.Store, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Store{}, nil
		}
		return nil, fmt.Errorf("read record file: %w", err)
	}
	store := domain.Store{}
	if err := json.Unmarshal(payload, &store); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, apperrors.ErrCorruptRecord)
	}
	return store, nil
}

func (s *FileRecordStore) Save(_ context.Context, store domain.Store) error {
	payload, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}
	return nil
}

func (s *FileRecordStore) Raw(_ context.Context) (string, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read record file: %w", err)
	}
	return string(payload), nil
}
