package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

// ErrNotFound is returned by Load when no snapshot exists under a name.
var ErrNotFound = errors.New("snapshot not found")

// ErrCorrupt is returned by Load when a snapshot file exists but cannot be
// parsed back into the canonical schema. Corrupt snapshots are fatal rather
// than being treated as a first run; the operator deletes the file to reset.
var ErrCorrupt = errors.New("snapshot corrupt")

// Store persists the last-seen dataset for each tracked name as a CSV file
// in a data directory.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

// snapshotPath returns the path of the snapshot file for a dataset name.
func (s *Store) snapshotPath(name string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s.csv", name))
}

// Exists reports whether a snapshot is stored under the given name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.snapshotPath(name))
	return err == nil
}

// Load reads the snapshot stored under name. Returns ErrNotFound if no
// snapshot exists, or an error wrapping ErrCorrupt if the file is unreadable
// as the canonical schema.
func (s *Store) Load(name string) (*table.Table, error) {
	path := s.snapshotPath(name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	t, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return t, nil
}

// Save overwrites the snapshot stored under name with the given dataset.
// There is no versioning; the previous snapshot is gone.
func (s *Store) Save(name string, t *table.Table) error {
	path := s.snapshotPath(name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return f.Close()
}
