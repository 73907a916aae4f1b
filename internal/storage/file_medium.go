package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMedium stores each slot as its own JSON file under a data
// directory. One file per slot keeps slot failures independent: a
// truncated plans file cannot take the habits down with it.
type FileMedium struct {
	dir string
}

func NewFileMedium(dir string) *FileMedium {
	return &FileMedium{dir: dir}
}

func (m *FileMedium) Get(key string) (string, bool) {
	data, err := os.ReadFile(m.slotPath(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (m *FileMedium) Set(key, value string) error {
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(m.slotPath(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (m *FileMedium) Close() error {
	return nil
}

func (m *FileMedium) slotPath(key string) string {
	return filepath.Join(m.dir, key+".json")
}
