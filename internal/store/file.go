package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// dataFile is the name of the single document the store persists.
const dataFile = "data.json"

// loadSnapshot reads the dataset from path, initializing the file with
// four empty collections when it does not exist yet.
func loadSnapshot(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		empty := Snapshot{
			Users:    []User{},
			Videos:   []Video{},
			Comments: []Comment{},
			Likes:    []Like{},
		}
		if err := writeSnapshot(path, empty); err != nil {
			return Snapshot{}, err
		}
		return empty, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return snap, nil
}

// writeSnapshot serializes the full dataset and replaces the data file
// atomically: the document is written to a temp file in the same
// directory, synced, and renamed over the destination. A crash mid-write
// leaves the previous file intact.
func writeSnapshot(path string, snap Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Cause: err}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return &PersistenceError{Path: path, Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Path: path, Cause: err}
	}
	return nil
}
