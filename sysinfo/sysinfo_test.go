package sysinfo

import (
	"encoding/binary"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageSize(t *testing.T) {
	require.Positive(t, PageSize())
	require.Equal(t, int32(os.Getpagesize()), PageSize())
	// Pages are powers of two on every supported target.
	require.Zero(t, PageSize()&(PageSize()-1))
}

func TestOSName(t *testing.T) {
	require.Equal(t, runtime.GOOS, OSName())
	require.NotEmpty(t, OSName())
}

func TestIsBigEndian(t *testing.T) {
	// Cross-check the cached flag against a fresh probe.
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	require.Equal(t, probe[0] == 0x01, IsBigEndian())
}

func TestVersions(t *testing.T) {
	require.NotEmpty(t, PackageVersion)
	require.NotEmpty(t, LibraryVersion)
}

func TestRandomInt(t *testing.T) {
	// Two draws colliding is astronomically unlikely; a collision here
	// means the source is broken, not unlucky.
	require.NotEqual(t, RandomInt(), RandomInt())
}

func TestRandomFloat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		f := RandomFloat()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}
