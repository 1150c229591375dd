package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON object on disk, the way a
// browser keeps localStorage for one origin.
type FileStore struct {
	path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Init(_ context.Context) error {
	if s.path == "" {
		return errors.New("state file path is required")
	}
	return os.MkdirAll(filepath.Dir(s.path), 0o755)
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, false, err
	}
	payload, ok := records[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(payload), true, nil
}

func (s *FileStore) Save(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		// A corrupt file must not block new writes.
		records = map[string]string{}
	}
	records[key] = string(payload)
	return s.write(records)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		records = map[string]string{}
	}
	if _, ok := records[key]; !ok && err == nil {
		return nil
	}
	delete(records, key)
	return s.write(records)
}

// read returns an empty map when the file does not exist yet.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	records := map[string]string{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return records, nil
}

func (s *FileStore) write(records map[string]string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
