package storage

import (
	"io"
	"os"
	"path/filepath"
)

// LogStorage hands out append-only file handles under a base directory. It
// backs the file sink of the request log.
type LogStorage interface {
	OpenAppend(name string) (io.WriteCloser, error)
	Exists(name string) bool
}

type logStorage struct {
	basePath string
}

func NewLogStorage(basePath string) LogStorage {
	return &logStorage{basePath: basePath}
}

func (s *logStorage) OpenAppend(name string) (io.WriteCloser, error) {
	fullPath := filepath.Join(s.basePath, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, err
	}

	return os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func (s *logStorage) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, name))
	return !os.IsNotExist(err)
}
