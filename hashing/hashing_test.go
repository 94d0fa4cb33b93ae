package hashing

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMurmur_PinnedVectors(t *testing.T) {
	// These values are load-bearing: persisted bucket layouts depend on
	// them, so any change here is a data-format break.
	tests := []struct {
		name string
		buf  string
		seed uint64
		want uint64
	}{
		{"empty zero seed", "", 0, 0x0000000000000000},
		{"empty nonzero seed", "", 19780211, 0x55b11e52e7461f8d},
		{"single byte", "a", 0, 0xa270d2f1568d4510},
		{"short", "hash", 1, 0x9692600a6ab59167},
		{"unaligned tail", "Hello World", 0, 0xa677cb227dce9472},
		{"unaligned tail with seed", "Hello World", 19780211, 0xe56b88743d379678},
		{"multi block", "0123456789abcdefghij", 0xdeadbeef, 0x492d649d613b6593},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Murmur([]byte(tt.buf), tt.seed))
			require.Equal(t, tt.want, MurmurString(tt.buf, tt.seed))
		})
	}
}

func TestMurmur_Deterministic(t *testing.T) {
	buf := []byte("some record payload")
	first := Murmur(buf, 0x1234)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Murmur(buf, 0x1234))
	}
}

func TestMurmur_SeedSensitivity(t *testing.T) {
	buf := []byte("same input")
	require.NotEqual(t, Murmur(buf, 1), Murmur(buf, 2))
}

func TestMurmur_Avalanche(t *testing.T) {
	// Flipping one input bit should flip a substantial share of output
	// bits. A weak threshold keeps the test deterministic while still
	// catching a broken mixer.
	base := []byte("avalanche probe input!")
	h0 := Murmur(base, 0)
	for i := range base {
		mutated := append([]byte(nil), base...)
		mutated[i] ^= 0x01
		diff := bits.OnesCount64(h0 ^ Murmur(mutated, 0))
		require.Greater(t, diff, 10, "flipping byte %d changed only %d bits", i, diff)
	}
}

func TestFNV_PinnedVectors(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want uint64
	}{
		{"empty is offset basis", "", 0xcbf29ce484222325},
		{"single byte", "a", 0xaf63bd4c8601b7be},
		{"words", "Hello World", 0x91f4e6ccce8b35af},
		{"long", "0123456789abcdefghij", 0xf13994f2e1b65c45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FNV([]byte(tt.buf)))
			require.Equal(t, tt.want, FNVString(tt.buf))
		})
	}
}

func BenchmarkMurmur(b *testing.B) {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Murmur(buf, 19780211)
	}
}

func BenchmarkFNV(b *testing.B) {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FNV(buf)
	}
}

func BenchmarkCRC32(b *testing.B) {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CRC32(buf)
	}
}
