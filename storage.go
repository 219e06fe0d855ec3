package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the durable string-keyed byte store backing a Store.
//
// Read reports ok=false when the key has never been written; the Store then
// substitutes the key's default. Any other failure, including a write
// failure, is unrecoverable for the caller and propagates untouched.
type Storage interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// DirStorage stores each key as one JSON file under a root directory.
// Every Write rewrites the whole file; there is no partial-write recovery,
// which is acceptable with a single writer.
type DirStorage struct {
	root string
}

// NewDirStorage returns a DirStorage rooted at the given directory.
// The directory is created lazily on the first Write.
func NewDirStorage(root string) DirStorage {
	return DirStorage{root: root}
}

func (d DirStorage) path(key string) string {
	return filepath.Join(d.root, key+".json")
}

func (d DirStorage) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return data, true, nil
}

func (d DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(d.root, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", d.root, err)
	}
	if err := os.WriteFile(d.path(key), data, 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}
