package lea

import "math/bits"

// The wide kernels hold the same state word of four independent blocks
// in one four-element lane array and apply each round's arithmetic
// across all lanes. The fixed-bound inner loops are written so the
// compiler can keep the lanes in vector registers; correctness does not
// depend on that, and the scalar kernels in block.go produce identical
// output.

func encryptWide(rk *[maxRoundKeys]uint32, rounds int, s0, s1, s2, s3 *[wideLanes]uint32) {
	for r := 0; r < rounds; r++ {
		k := rk[6*r : 6*r+6]
		k0, k1, k2, k3, k4, k5 := k[0], k[1], k[2], k[3], k[4], k[5]

		var t0, t1, t2 [wideLanes]uint32
		for l := 0; l < wideLanes; l++ {
			t0[l] = bits.RotateLeft32((s0[l]^k0)+(s1[l]^k1), 9)
		}
		for l := 0; l < wideLanes; l++ {
			t1[l] = bits.RotateLeft32((s1[l]^k2)+(s2[l]^k3), -5)
		}
		for l := 0; l < wideLanes; l++ {
			t2[l] = bits.RotateLeft32((s2[l]^k4)+(s3[l]^k5), -3)
		}
		for l := 0; l < wideLanes; l++ {
			s3[l] = s0[l]
		}
		*s0, *s1, *s2 = t0, t1, t2
	}
}

func decryptWide(rk *[maxRoundKeys]uint32, rounds int, s0, s1, s2, s3 *[wideLanes]uint32) {
	for r := rounds - 1; r >= 0; r-- {
		k := rk[6*r : 6*r+6]
		k0, k1, k2, k3, k4, k5 := k[0], k[1], k[2], k[3], k[4], k[5]

		var t0, t1, t2, t3 [wideLanes]uint32
		for l := 0; l < wideLanes; l++ {
			t0[l] = s3[l]
		}
		for l := 0; l < wideLanes; l++ {
			t1[l] = (bits.RotateLeft32(s0[l], -9) - (t0[l] ^ k0)) ^ k1
		}
		for l := 0; l < wideLanes; l++ {
			t2[l] = (bits.RotateLeft32(s1[l], 5) - (t1[l] ^ k2)) ^ k3
		}
		for l := 0; l < wideLanes; l++ {
			t3[l] = (bits.RotateLeft32(s2[l], 3) - (t2[l] ^ k4)) ^ k5
		}
		*s0, *s1, *s2, *s3 = t0, t1, t2, t3
	}
}
