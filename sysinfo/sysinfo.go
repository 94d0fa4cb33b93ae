// Package sysinfo exposes the process-wide, read-only configuration
// values of the library: version strings, OS name, memory page size,
// and detected byte order. Everything is computed once during package
// initialization and never mutated afterwards, so all accessors are
// safe to call concurrently without synchronization.
package sysinfo

import (
	"encoding/binary"
	"os"
	"runtime"
)

const (
	// PackageVersion is the version of the whole package.
	PackageVersion = "1.0.27"

	// LibraryVersion is the version of the core library API.
	LibraryVersion = "1.68.0"

	// NumBufferSize is the buffer size reserved for a numeric string
	// expression.
	NumBufferSize = 32

	// MaxMemorySize is the maximum memory size the library will address.
	MaxMemorySize = int64(1) << 40
)

var (
	pageSize  int32
	osName    string
	bigEndian bool
)

func init() {
	pageSize = int32(os.Getpagesize())
	osName = runtime.GOOS

	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	bigEndian = probe[0] == 0x01
}

// PageSize returns the size of a memory page on the OS.
func PageSize() int32 {
	return pageSize
}

// OSName returns the recognized operating system name.
func OSName() string {
	return osName
}

// IsBigEndian reports whether the host byte order is big endian.
func IsBigEndian() bool {
	return bigEndian
}
