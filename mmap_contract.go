package objmesh

// ============================================================================
// Internal mmap backend contract
// ============================================================================
//
// The facade (facade.go) is written against a small platform-dependent
// surface for acquiring the input file as a read-only byte slice. Each
// supported OS group provides it via a build-tagged file:
//
//   - Unix (mmap fast path):        mmap_unix.go
//   - Everything else (ReadFile):   mmap_other.go
//
// openMappedInput maps (or reads) path and returns a mappedFile exposing the
// bytes plus a close method that unmaps (or is a no-op for the fallback).
// The returned byte slice is read-only for the lifetime of the facade call;
// callers must not retain it past closeHandle.
//
// This file intentionally contains no runtime dispatch; it only documents
// and compile-time-checks the required surface.

var _ func(path string) (mappedFile, error) = openMappedInput

type mmapHandle interface {
	bytes() []byte
	closeHandle() error
}

var _ mmapHandle = mappedFile{}
