package sysinfo

import "math/rand"

// RandomInt returns a random integer in [0, math.MaxUint64] from the
// process-wide hidden seed. Safe for concurrent use; not suitable for
// security purposes.
func RandomInt() uint64 {
	return rand.Uint64()
}

// RandomFloat returns a random real number in [0.0, 1.0) from the
// process-wide hidden seed.
func RandomFloat() float64 {
	return rand.Float64()
}
