package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"storefront-cart/internal/infra"
)

var fileKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type fileEnvelope struct {
	Version int64  `json:"version"`
	Value   []byte `json:"value"`
}

// FileStore keeps one JSON file per key. Writes go through a temp file and a
// rename. Only writers inside this process are serialized.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "create store directory", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) Get(_ context.Context, key string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, corrupt, err := s.read(key)
	if err != nil {
		return Entry{}, err
	}
	if corrupt {
		return Entry{}, infra.WrapErr(s.logger, infra.KindCorrupt, fmt.Sprintf("unreadable entry %q", key), nil)
	}
	return Entry{Value: env.Value, Version: env.Version}, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, _, err := s.read(key)
	if err != nil {
		return 0, err
	}
	return s.write(key, env.Version+1, value)
}

func (s *FileStore) CompareAndSet(_ context.Context, key string, expected int64, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, _, err := s.read(key)
	if err != nil {
		return 0, err
	}
	if env.Version != expected {
		return 0, conflictErr(s.logger, key, expected)
	}
	return s.write(key, expected+1, value)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(key string) (string, error) {
	if !fileKeyRegex.MatchString(key) {
		return "", infra.WrapErr(s.logger, infra.KindStoreFailure, fmt.Sprintf("key %q is not usable as a file name", key), nil)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// read reports an unparseable file as corrupt with version 0 so a later write heals it.
func (s *FileStore) read(key string) (fileEnvelope, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return fileEnvelope{}, false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fileEnvelope{}, false, nil
	}
	if err != nil {
		return fileEnvelope{}, false, infra.WrapErr(s.logger, infra.KindStoreFailure, "read entry", err)
	}
	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fileEnvelope{}, true, nil
	}
	return env, false, nil
}

func (s *FileStore) write(key string, version int64, value []byte) (int64, error) {
	p, err := s.path(key)
	if err != nil {
		return 0, err
	}
	data, err := json.Marshal(fileEnvelope{Version: version, Value: value})
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "encode entry", err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "create temp file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "close temp file", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "replace entry", err)
	}
	return version, nil
}
