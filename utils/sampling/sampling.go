package sampling

import (
	"encoding/binary"
)

// RandUint64 reads a uniform value in [0, 0xFFFFFFFFFFFFFFFF] from the PRNG.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 reads a uniform float in [min, max) from the PRNG.
func RandFloat64(prng PRNG, min, max float64) float64 {
	// 53 random bits scaled by 2^-53, uniform in [0, 1).
	f := float64(RandUint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}
