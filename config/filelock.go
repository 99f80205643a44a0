package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock serializes config writes between processes. It locks a separate
// file next to the config so readers never see a half-written config.json.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock returns a lock living in dir.
func NewFileLock(dir string) *FileLock {
	return &FileLock{path: filepath.Join(dir, lockFileName)}
}

// Lock blocks until the exclusive lock is held.
func (l *FileLock) Lock() error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil

	if err := unlockFile(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return f.Close()
}
