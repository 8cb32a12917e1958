package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xRadioAc7iv/go-employees/internal/record"
	"github.com/0xRadioAc7iv/go-employees/internal/utils"
)

// Store persists the complete employee set. Load and Save always work on the
// whole set; there is no partial read or in-place update.
type Store interface {
	Load() ([]Employee, error)
	Save(employees []Employee) error
}

// FileStore keeps employees in a single file of fixed-width records with no
// header, no checksum and no version marker.
//
// Save truncates before writing, so a failed Save can leave the file empty or
// partially written. Concurrent writers are not coordinated here.
type FileStore struct {
	path   string
	mode   os.FileMode
	logger *slog.Logger
}

type StoreOption func(*FileStore)

func WithLogger(logger *slog.Logger) StoreOption {
	return func(fs *FileStore) {
		fs.logger = logger
	}
}

func WithFileMode(mode os.FileMode) StoreOption {
	return func(fs *FileStore) {
		fs.mode = mode
	}
}

func NewFileStore(path string, opts ...StoreOption) *FileStore {
	fs := &FileStore{
		path:   path,
		mode:   DefaultFileMode,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(fs)
	}

	return fs
}

func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads every complete record in the file. A missing or unreadable file
// is an empty set, and bytes after the last complete record are ignored.
func (fs *FileStore) Load() ([]Employee, error) {
	employees := []Employee{}

	f, err := os.Open(fs.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fs.logger.Warn("cannot open data file, treating it as empty", "path", fs.path, "err", err)
		}
		return employees, nil
	}
	defer f.Close()

	var offset int64 = 0
	buf := make([]byte, record.RecordSizeBytes)

	for {
		n, err := io.ReadFull(f, buf)
		if err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				fs.logger.Warn("ignoring trailing partial record", "path", fs.path, "offset", offset, "bytes", n)
				break
			}
			return nil, fmt.Errorf("%w %s at offset %d: %v", ErrStorageRead, fs.path, offset, err)
		}

		diskRecord, err := record.DecodeRecordFromBytes(buf)
		if err != nil {
			return nil, fmt.Errorf("%w %s at offset %d: %v", ErrStorageRead, fs.path, offset, err)
		}

		employees = append(employees, employeeFromRecord(diskRecord))
		offset += int64(n)
	}

	fs.logger.Debug("loaded employees", "path", fs.path, "count", len(employees))

	return employees, nil
}

// Save replaces the file contents with employees, in order.
func (fs *FileStore) Save(employees []Employee) error {
	existed := utils.IsRegularFile(fs.path)

	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY, fs.mode)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrStorageWrite, fs.path, err)
	}

	if err := fs.writeAll(f, employees); err != nil {
		f.Close()
		return fmt.Errorf("%w %s: %v", ErrStorageWrite, fs.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrStorageWrite, fs.path, err)
	}

	fs.logger.Debug("saved employees", "path", fs.path, "count", len(employees), "created", !existed)

	return nil
}

func (fs *FileStore) writeAll(f *os.File, employees []Employee) error {
	chunks := make([][]byte, 0, len(employees))
	for _, emp := range employees {
		diskRecord := employeeToRecord(emp)
		encoded, err := record.EncodeRecordToBytes(&diskRecord)
		if err != nil {
			return err
		}
		chunks = append(chunks, encoded)
	}

	_, err := utils.RewriteFile(f, chunks)
	return err
}
