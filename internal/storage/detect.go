package storage

import (
	"errors"

	"github.com/karl0ss/downgrangefixtures-ical/internal/table"
)

// Verdict classifies a freshly fetched dataset against its stored snapshot.
type Verdict int

const (
	// FirstRun means no snapshot exists yet for the dataset.
	FirstRun Verdict = iota
	// Unchanged means the fresh dataset is structurally identical to the snapshot.
	Unchanged
	// Changed means at least one cell, row, or column differs.
	Changed
)

func (v Verdict) String() string {
	switch v {
	case FirstRun:
		return "first-run"
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	}
	return "unknown"
}

// Detect compares a fresh dataset against the snapshot stored under name.
// A missing snapshot yields FirstRun; a corrupt snapshot is an error, not a
// first run. Detect does not update the snapshot.
func (s *Store) Detect(name string, fresh *table.Table) (Verdict, error) {
	previous, err := s.Load(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return FirstRun, nil
		}
		return Changed, err
	}

	if table.Equal(previous, fresh) {
		return Unchanged, nil
	}
	return Changed, nil
}
