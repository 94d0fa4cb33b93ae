// Package hashing provides the non-cryptographic digest primitives used
// for checksumming and bucket distribution: a seeded 64-bit Murmur hash,
// a 64-bit FNV hash, and a resumable CRC-32. All three are pure
// functions of their input bytes and produce identical values on every
// architecture, which on-disk structures depend on. None of them are
// suitable for security purposes.
package hashing
