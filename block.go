package lea

import (
	"encoding/binary"
	"math/bits"
)

// loadBlock unpacks a 16-byte block into four little-endian words.
func loadBlock(x *[4]uint32, b []byte) {
	_ = b[15]
	x[0] = binary.LittleEndian.Uint32(b[0:])
	x[1] = binary.LittleEndian.Uint32(b[4:])
	x[2] = binary.LittleEndian.Uint32(b[8:])
	x[3] = binary.LittleEndian.Uint32(b[12:])
}

// storeBlock packs four words back into a 16-byte block.
func storeBlock(b []byte, x *[4]uint32) {
	_ = b[15]
	binary.LittleEndian.PutUint32(b[0:], x[0])
	binary.LittleEndian.PutUint32(b[4:], x[1])
	binary.LittleEndian.PutUint32(b[8:], x[2])
	binary.LittleEndian.PutUint32(b[12:], x[3])
}

// encryptWords runs the forward round function over one block state.
// Round r consumes subkeys rk[6r..6r+5]; the four-word state rotates one
// position per round, with the old x0 becoming the new x3.
func encryptWords(rk *[maxRoundKeys]uint32, rounds int, x *[4]uint32) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]

	for r := 0; r < rounds; r++ {
		k := rk[6*r : 6*r+6]

		t0 := bits.RotateLeft32((x0^k[0])+(x1^k[1]), 9)
		t1 := bits.RotateLeft32((x1^k[2])+(x2^k[3]), -5)
		t2 := bits.RotateLeft32((x2^k[4])+(x3^k[5]), -3)
		x0, x1, x2, x3 = t0, t1, t2, x0
	}

	x[0], x[1], x[2], x[3] = x0, x1, x2, x3
}

// decryptWords runs the inverse round function: rounds in reverse order,
// each undoing the forward add/rotate/xor and the word rotation.
func decryptWords(rk *[maxRoundKeys]uint32, rounds int, x *[4]uint32) {
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]

	for r := rounds - 1; r >= 0; r-- {
		k := rk[6*r : 6*r+6]

		t0 := x3
		t1 := (bits.RotateLeft32(x0, -9) - (t0 ^ k[0])) ^ k[1]
		t2 := (bits.RotateLeft32(x1, 5) - (t1 ^ k[2])) ^ k[3]
		t3 := (bits.RotateLeft32(x2, 3) - (t2 ^ k[4])) ^ k[5]
		x0, x1, x2, x3 = t0, t1, t2, t3
	}

	x[0], x[1], x[2], x[3] = x0, x1, x2, x3
}
