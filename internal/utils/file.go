package utils

import "os"

// RewriteFile empties f and writes chunks back to back from offset 0, then
// syncs. It returns the number of bytes written.
func RewriteFile(f *os.File, chunks [][]byte) (int64, error) {
	if err := f.Truncate(0); err != nil {
		return 0, err
	}

	var offset int64 = 0
	for _, chunk := range chunks {
		n, err := f.WriteAt(chunk, offset)
		offset += int64(n)
		if err != nil {
			return offset, err
		}
	}

	return offset, f.Sync()
}

// Indicates if path names an existing regular file (directories do not count)
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
