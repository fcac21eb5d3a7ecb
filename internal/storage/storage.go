// Package storage is the byte-blob primitive behind the databases: it
// resolves the app-private data directory and loads/saves whole files
// keyed by a logical name.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is the directory holding the tracker's database files.
type Dir string

// Open resolves the data directory (~/.pnch), creating it on first use.
func Open() (Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve the data directory")
	}
	path := filepath.Join(home, ".pnch")
	if err := os.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("cannot create the data directory")
	}
	return Dir(path), nil
}

// Load reads the whole database file with the given name. A file that
// does not exist yet reads as empty.
func (d Dir) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(string(d), name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load the %s database", name)
	}
	return data, nil
}

// Save rewrites the whole database file with the given name. The write
// goes to a temp file first and is renamed into place.
func (d Dir) Save(name string, data []byte) error {
	path := filepath.Join(string(d), name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("cannot save the %s database", name)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cannot save the %s database", name)
	}
	return nil
}
