package projlock_test

import (
	"testing"

	"inkwell/internal/projlock"
)

func TestAcquireRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := projlock.Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// Re-acquirable after release.
	lock, err = projlock.Acquire(dir)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	_ = lock.Release()
}

func TestReleaseNil(t *testing.T) {
	var lock *projlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil Release: %v", err)
	}
}
