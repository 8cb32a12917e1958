//go:build unix

package lock

import (
	"fmt"
	"os"
	"syscall"
)

// LockDataFile takes a non-blocking flock(2) on "<dataFile>.lock" and writes
// the current PID into it. The returned file must stay open while the lock
// is held.
func LockDataFile(dataFile string) (*os.File, error) {
	f, err := os.OpenFile(LockFilePath(dataFile), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, inUse(dataFile)
	}

	if err := recordOwner(f); err != nil {
		UnlockDataFile(f)
		return nil, fmt.Errorf("unable to write lock file: %w", err)
	}

	return f, nil
}

// UnlockDataFile drops the flock and closes f. The lock file itself is left
// behind; a stale one does not block the next session.
func UnlockDataFile(f *os.File) {
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	f.Close()
}
