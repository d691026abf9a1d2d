package lea

import (
	"encoding/binary"
	"math/bits"
)

// maxRoundKeys is sized for the largest schedule (32 rounds x 6 words).
const maxRoundKeys = 32 * 6

// delta holds the key-schedule constants from the LEA specification.
// 128-bit keys use the first four, 192-bit keys the first six, 256-bit
// keys all eight.
var delta = [8]uint32{
	0xc3efe9db, 0x44626b02, 0x79e27c8a, 0x78df30ec,
	0x715ea49e, 0xc785da0a, 0xe04ef22a, 0xe5c40957,
}

// scheduleRot holds the per-slot rotation amounts applied to the key
// state while generating one round's six subkeys.
var scheduleRot = [6]int{1, 3, 6, 11, 13, 17}

// roundKeys is the expanded schedule owned by a cipher instance.
// It is written once during key setup and read-only afterwards.
type roundKeys struct {
	rk     [maxRoundKeys]uint32
	rounds int
}

// expandKey validates the key length and runs the matching schedule.
// Rounds: 24 for 16-byte keys, 28 for 24-byte keys, 32 for 32-byte keys.
func expandKey(key []byte) (*roundKeys, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	keys := new(roundKeys)
	keys.rounds = len(key)/2 + 16

	switch len(key) {
	case 16:
		keys.expand128(key)
	case 24:
		keys.expand192(key)
	case 32:
		keys.expand256(key)
	}
	return keys, nil
}

func (k *roundKeys) expand128(key []byte) {
	var t [4]uint32
	for i := range t {
		t[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	for i := 0; i < 24; i++ {
		d := delta[i%4]
		t[0] = bits.RotateLeft32(t[0]+bits.RotateLeft32(d, i), 1)
		t[1] = bits.RotateLeft32(t[1]+bits.RotateLeft32(d, i+1), 3)
		t[2] = bits.RotateLeft32(t[2]+bits.RotateLeft32(d, i+2), 6)
		t[3] = bits.RotateLeft32(t[3]+bits.RotateLeft32(d, i+3), 11)

		k.rk[6*i+0] = t[0]
		k.rk[6*i+1] = t[1]
		k.rk[6*i+2] = t[2]
		k.rk[6*i+3] = t[1]
		k.rk[6*i+4] = t[3]
		k.rk[6*i+5] = t[1]
	}

	wipeWords(t[:])
}

func (k *roundKeys) expand192(key []byte) {
	var t [6]uint32
	for i := range t {
		t[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	for i := 0; i < 28; i++ {
		d := delta[i%6]
		for j := 0; j < 6; j++ {
			t[j] = bits.RotateLeft32(t[j]+bits.RotateLeft32(d, i+j), scheduleRot[j])
			k.rk[6*i+j] = t[j]
		}
	}

	wipeWords(t[:])
}

func (k *roundKeys) expand256(key []byte) {
	var t [8]uint32
	for i := range t {
		t[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	for i := 0; i < 32; i++ {
		d := delta[i%8]
		for j := 0; j < 6; j++ {
			idx := (6*i + j) % 8
			t[idx] = bits.RotateLeft32(t[idx]+bits.RotateLeft32(d, i+j), scheduleRot[j])
			k.rk[6*i+j] = t[idx]
		}
	}

	wipeWords(t[:])
}

func wipeWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}
