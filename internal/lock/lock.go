// Package lock keeps two interactive sessions from editing the same data
// file at once. It does not protect against other programs writing to it.
package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrInUse = errors.New("data file already in use by another session")

const LockFileSuffix = ".lock"

func LockFilePath(dataFile string) string {
	return dataFile + LockFileSuffix
}

// recordOwner replaces the lock file contents with the current process ID.
func recordOwner(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	return err
}

// inUse builds the error returned when dataFile is already locked, naming
// the holding process when the lock file says which one it is.
func inUse(dataFile string) error {
	data, err := os.ReadFile(LockFilePath(dataFile))
	if err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			return fmt.Errorf("%s: %w (pid %d)", dataFile, ErrInUse, pid)
		}
	}
	return fmt.Errorf("%s: %w", dataFile, ErrInUse)
}
