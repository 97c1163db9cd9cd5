//go:build unix

// mmap_unix.go implements the internal mmap backend contract (see
// mmap_contract.go) for all Unix-family platforms: linux, darwin, freebsd,
// openbsd, netbsd, dragonfly, solaris.
package objmesh

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is a read-only memory mapping of an input file.
type mappedFile struct {
	data []byte
}

func (m mappedFile) bytes() []byte {
	return m.data
}

func (m mappedFile) closeHandle() error {
	if m.data == nil {
		return nil
	}
	if err := unix.Munmap(m.data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}

// openMappedInput opens path, maps it PROT_READ/MAP_PRIVATE, and advises
// the kernel of the sequential batch-cutting access pattern.
func openMappedInput(path string) (mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return mappedFile{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return mappedFile{}, fmt.Errorf("stat: %w", err)
	}

	size := info.Size()
	if size == 0 {
		return mappedFile{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return mappedFile{}, fmt.Errorf("mmap: %w", err)
	}

	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	_ = unix.Madvise(data, unix.MADV_WILLNEED)

	return mappedFile{data: data}, nil
}
