// Package projlock serializes mutating commands against one project with an
// advisory file lock. A concurrent second writer gets a clean error instead
// of a last-write-wins race on the artifact files.
package projlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is the lock file name inside a project directory.
const LockFile = ".inkwell.lock"

// Lock holds an acquired project lock until Release.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the advisory lock for the project directory without
// blocking. It fails when another inkwell process holds it.
func Acquire(projectDir string) (*Lock, error) {
	fl := flock.New(filepath.Join(projectDir, LockFile))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another inkwell command is already working on %s", projectDir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
