package hashing

import "encoding/binary"

const (
	murmurMul   = 0xc6a4a7935bd1e895
	murmurShift = 47
)

// Murmur computes the 64-bit MurmurHash value of buf under seed.
//
// The result is well-distributed (avalanche property) and is used for
// bucket placement in persisted hash structures, so the output for a
// given buffer and seed must never change. Word loads are explicitly
// little-endian to keep the value identical across architectures.
func Murmur(buf []byte, seed uint64) uint64 {
	h := seed ^ uint64(len(buf))*murmurMul
	for len(buf) >= 8 {
		k := binary.LittleEndian.Uint64(buf)
		k *= murmurMul
		k ^= k >> murmurShift
		k *= murmurMul
		h ^= k
		h *= murmurMul
		buf = buf[8:]
	}
	if len(buf) > 0 {
		var k uint64
		for i := len(buf) - 1; i >= 0; i-- {
			k = k<<8 | uint64(buf[i])
		}
		h ^= k
		h *= murmurMul
	}
	h ^= h >> murmurShift
	h *= murmurMul
	h ^= h >> murmurShift
	return h
}

// MurmurString is a convenience over Murmur for string keys.
func MurmurString(str string, seed uint64) uint64 {
	return Murmur([]byte(str), seed)
}
