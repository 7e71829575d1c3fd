// Package noise produces deterministic pseudo-random pixel buffers.
//
// Noise images are the incompressible worst case for the image encoders
// and make a useful baseline when benchmarking render output paths.
package noise

import "math/rand"

// Buffer returns n pseudo-random bytes. The same seed always produces the
// same bytes, so benchmark images are reproducible across runs.
func Buffer(n int, seed int64) []byte {
	buf := make([]byte, n)
	rng := rand.New(rand.NewSource(seed))
	// Rand.Read never fails.
	rng.Read(buf)
	return buf
}
