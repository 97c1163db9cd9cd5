//go:build !unix

// mmap_other.go implements the internal mmap backend contract (see
// mmap_contract.go) for platforms without a maintained mmap fast path
// (windows and anything else outside the unix build-tag family). It uses
// only the portable os.ReadFile API; the high-level pipeline is identical,
// only the acquisition primitive differs.
package objmesh

import (
	"fmt"
	"os"
)

// mappedFile holds the input file's bytes in a heap buffer on platforms
// without a mmap fast path.
type mappedFile struct {
	data []byte
}

func (m mappedFile) bytes() []byte {
	return m.data
}

func (m mappedFile) closeHandle() error {
	return nil
}

func openMappedInput(path string) (mappedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mappedFile{}, fmt.Errorf("read: %w", err)
	}
	return mappedFile{data: data}, nil
}
