package hashing

import "hash/crc32"

// CRC32Seed is the required accumulator value for the first call of a
// CRC32Continuous cycle.
const CRC32Seed uint32 = 0xFFFFFFFF

// CRC32Continuous feeds one chunk into a CRC-32 (IEEE polynomial)
// computation. The first call of a cycle supplies CRC32Seed; each later
// call supplies the accumulator returned by the previous one. The final
// call passes finish=true, which applies the closing inversion and
// returns the checksum. Feeding chunks in order produces exactly the
// value CRC32 yields over their concatenation.
func CRC32Continuous(buf []byte, finish bool, seed uint32) uint32 {
	// hash/crc32 carries checksums in their finished (inverted) form;
	// flip on the way in and out to expose the raw accumulator.
	acc := ^crc32.Update(^seed, crc32.IEEETable, buf)
	if finish {
		return ^acc
	}
	return acc
}

// CRC32 computes the CRC-32 checksum of a whole buffer in one shot.
func CRC32(buf []byte) uint32 {
	return CRC32Continuous(buf, true, CRC32Seed)
}

// CRC32String is a convenience over CRC32 for strings.
func CRC32String(str string) uint32 {
	return CRC32([]byte(str))
}

// CRC32Digest carries the state of a chunked CRC-32 computation: the
// running accumulator and whether it has been finalized. A digest is
// owned by a single logical stream; concurrent writers must use one
// digest each.
type CRC32Digest struct {
	acc      uint32
	finished bool
}

// NewCRC32Digest starts a chunked CRC-32 computation.
func NewCRC32Digest() *CRC32Digest {
	return &CRC32Digest{acc: CRC32Seed}
}

// Write feeds the next chunk into the digest. Writing to a finalized
// digest is a caller error and panics.
func (d *CRC32Digest) Write(chunk []byte) {
	if d.finished {
		panic("hashing: write to a finished CRC32Digest")
	}
	d.acc = CRC32Continuous(chunk, false, d.acc)
}

// Sum32 finalizes the digest and returns the checksum. Further calls
// return the same value.
func (d *CRC32Digest) Sum32() uint32 {
	if !d.finished {
		d.acc = ^d.acc
		d.finished = true
	}
	return d.acc
}
