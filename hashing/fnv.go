package hashing

import "hash/fnv"

// FNV computes the 64-bit FNV-1 hash of buf: a sequential multiply-xor
// accumulation over each byte. Distribution quality is worse than
// Murmur, but it is cheaper and needs no seed.
func FNV(buf []byte) uint64 {
	h := fnv.New64()
	h.Write(buf) // never returns an error
	return h.Sum64()
}

// FNVString is a convenience over FNV for string keys.
func FNVString(str string) uint64 {
	return FNV([]byte(str))
}
