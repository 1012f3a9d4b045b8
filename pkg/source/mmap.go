package source

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Decoder turns a mapped file buffer into a Database. The binary layout is
// owned by the format library supplying the decoder; this package only
// hands it the bytes and consumes the resulting catalog.
type Decoder func(data []byte) (Database, error)

// MappedFile is one read-only memory mapping of a source file. The buffer
// is shared and immutable for the lifetime of the mapping; closing it
// invalidates every Database, Table and Field decoded from it.
type MappedFile struct {
	file *os.File
	data []byte
}

// OpenFile opens and memory-maps path read-only.
func OpenFile(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// mmap rejects zero-length mappings; an empty file maps to no bytes.
	if info.Size() == 0 {
		return &MappedFile{file: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &MappedFile{file: f, data: data}, nil
}

// Bytes returns the mapped buffer. Valid until Close.
func (m *MappedFile) Bytes() []byte {
	return m.data
}

// Name returns the path the mapping was opened from.
func (m *MappedFile) Name() string {
	return m.file.Name()
}

// Close unmaps the buffer and closes the file.
func (m *MappedFile) Close() error {
	var errs []error

	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			errs = append(errs, fmt.Errorf("munmap: %w", err))
		}
		m.data = nil
	}

	if err := m.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close: %w", err))
	}

	return errors.Join(errs...)
}
