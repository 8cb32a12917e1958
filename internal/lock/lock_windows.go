//go:build windows

package lock

import (
	"fmt"
	"os"
)

// LockDataFile creates "<dataFile>.lock" exclusively and writes the current
// PID into it. An existing lock file means another session holds the lock.
func LockDataFile(dataFile string) (*os.File, error) {
	f, err := os.OpenFile(LockFilePath(dataFile), os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, inUse(dataFile)
	}

	if err := recordOwner(f); err != nil {
		UnlockDataFile(f)
		return nil, fmt.Errorf("unable to write lock file: %w", err)
	}

	return f, nil
}

// UnlockDataFile closes f and removes the lock file. Call it once per
// successful LockDataFile.
func UnlockDataFile(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
