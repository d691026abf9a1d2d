package lea

import "golang.org/x/crypto/blake2b"

// blockGenerator is a deterministic pseudo-random block source used by
// the avalanche and batched-equivalence tests. It maintains a 64-byte
// state that is repeatedly hashed with Blake2b-512 to produce a stream
// of pseudo-random bytes, so failures reproduce exactly across runs.
type blockGenerator struct {
	data [64]byte // Current Blake2b-512 output
	pos  int      // Position in current output (0-63)
}

// newBlockGenerator seeds a generator by hashing seed with Blake2b-512.
func newBlockGenerator(seed []byte) *blockGenerator {
	g := &blockGenerator{
		pos: 64, // Force initial generation
	}
	hash := blake2b.Sum512(seed)
	copy(g.data[:], hash[:])
	return g
}

// generate advances to the next 64 bytes of pseudo-random data.
func (g *blockGenerator) generate() {
	hash := blake2b.Sum512(g.data[:])
	copy(g.data[:], hash[:])
	g.pos = 0
}

// nextByte returns the next pseudo-random byte.
func (g *blockGenerator) nextByte() byte {
	if g.pos >= 64 {
		g.generate()
	}
	b := g.data[g.pos]
	g.pos++
	return b
}

// nextBytes fills and returns a fresh slice of n pseudo-random bytes.
func (g *blockGenerator) nextBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = g.nextByte()
	}
	return out
}

// nextBlock returns one pseudo-random 16-byte block.
func (g *blockGenerator) nextBlock() []byte {
	return g.nextBytes(BlockSize)
}
