// Package randutil builds the deterministic dice sources used by the CLI
// and the simulator.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a PCG-backed *rand.Rand seeded from seed. The same seed always
// yields the same dice.
func New(seed int64) *rand.Rand {
	return Stream(seed, 0)
}

// Stream returns an independent generator for one of several workers that
// share a seed. Stream(seed, 0) is identical to New(seed).
func Stream(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) + stream*goldenRatio64*2
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
