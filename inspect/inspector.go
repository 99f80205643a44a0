// Package inspect writes machine-readable snapshots of the indicator state so
// scripts and tests can see what the badge shows without reading the screen.
//
// Set BPI_INSPECT=1 to enable it. Snapshots go to
// $TMPDIR/breakpoint-indicator-inspect.json unless BPI_INSPECT_FILE names
// another path. The file is rewritten after every evaluation.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled reports whether BPI_INSPECT=1 was set at startup.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv("BPI_INSPECT") == "1"
		if !enabled {
			return
		}
		inspectFile = os.Getenv("BPI_INSPECT_FILE")
		if inspectFile == "" {
			inspectFile = filepath.Join(os.TempDir(), "breakpoint-indicator-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile returns the snapshot path, or "" when inspection is off.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot replaces the inspection file with snapshot. It is a no-op
// when inspection is off.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes snapshot as JSON. The file is written next to
// path and renamed into place, so a script polling path never reads half a
// snapshot while the terminal is being resized.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshotToPath.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}
