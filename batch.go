package lea

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Flags selects the auxiliary-block behavior of ProcessBlocks. Mode
// layers combine them to build chaining schemes: CBC encryption is
// XORInput with the previous ciphertext as aux, CBC decryption is
// XOROutput, CTR is XOROutput with the data stream as aux and counter
// blocks as src.
type Flags uint32

const (
	// XORInput XORs the auxiliary block into each input block before
	// the transform.
	XORInput Flags = 1 << iota

	// XOROutput XORs the auxiliary block into each result after the
	// transform.
	XOROutput

	// FixedInput reuses the first 16 bytes of src for every block
	// instead of advancing through src. The block count always comes
	// from len(dst).
	FixedInput

	// FixedAux reuses the first 16 bytes of aux for every block
	// instead of advancing through aux.
	FixedAux
)

// wideLanes is the batch width of the wide path: four blocks per pass,
// matching 4x32-bit state words packed into 128-bit vector registers.
const wideLanes = 4

// useWide gates the multi-lane path on hardware with wide registers
// where the flattened lane loops are worth it. The scalar path handles
// the remaining n mod 4 blocks either way, with identical output.
var useWide = cpu.X86.HasAVX2 || cpu.X86.HasSSE41 || cpu.ARM64.HasASIMD

// ProcessBlocks encrypts len(dst)/16 blocks from src into dst,
// applying the auxiliary stream aux as directed by flags. Aux may be
// nil when no XOR flag is set. Blocks are independent; when aux
// advances it is consumed in strict index order.
func (e *Encrypter) ProcessBlocks(dst, src, aux []byte, flags Flags) {
	processBlocks(e.keys, false, dst, src, aux, flags)
}

// ProcessBlocks decrypts len(dst)/16 blocks from src into dst,
// applying the auxiliary stream aux as directed by flags. Aux may be
// nil when no XOR flag is set.
func (d *Decrypter) ProcessBlocks(dst, src, aux []byte, flags Flags) {
	processBlocks(d.keys, true, dst, src, aux, flags)
}

func processBlocks(keys *roundKeys, decrypt bool, dst, src, aux []byte, flags Flags) {
	if len(dst)%BlockSize != 0 {
		panic("lea: output not full blocks")
	}
	n := len(dst) / BlockSize
	if n == 0 {
		return
	}

	srcStep := BlockSize
	if flags&FixedInput != 0 {
		srcStep = 0
	}
	if len(src) < (n-1)*srcStep+BlockSize {
		panic("lea: input not full blocks")
	}

	auxStep := 0
	if flags&(XORInput|XOROutput) != 0 {
		if flags&FixedAux == 0 {
			auxStep = BlockSize
		}
		if len(aux) < (n-1)*auxStep+BlockSize {
			panic("lea: auxiliary input not full blocks")
		}
	}

	i := 0
	if useWide {
		for ; i+wideLanes <= n; i += wideLanes {
			var s0, s1, s2, s3 [wideLanes]uint32
			for l := 0; l < wideLanes; l++ {
				off := (i + l) * srcStep
				s0[l] = binary.LittleEndian.Uint32(src[off:])
				s1[l] = binary.LittleEndian.Uint32(src[off+4:])
				s2[l] = binary.LittleEndian.Uint32(src[off+8:])
				s3[l] = binary.LittleEndian.Uint32(src[off+12:])
			}
			if flags&XORInput != 0 {
				for l := 0; l < wideLanes; l++ {
					off := (i + l) * auxStep
					s0[l] ^= binary.LittleEndian.Uint32(aux[off:])
					s1[l] ^= binary.LittleEndian.Uint32(aux[off+4:])
					s2[l] ^= binary.LittleEndian.Uint32(aux[off+8:])
					s3[l] ^= binary.LittleEndian.Uint32(aux[off+12:])
				}
			}
			if decrypt {
				decryptWide(&keys.rk, keys.rounds, &s0, &s1, &s2, &s3)
			} else {
				encryptWide(&keys.rk, keys.rounds, &s0, &s1, &s2, &s3)
			}
			if flags&XOROutput != 0 {
				for l := 0; l < wideLanes; l++ {
					off := (i + l) * auxStep
					s0[l] ^= binary.LittleEndian.Uint32(aux[off:])
					s1[l] ^= binary.LittleEndian.Uint32(aux[off+4:])
					s2[l] ^= binary.LittleEndian.Uint32(aux[off+8:])
					s3[l] ^= binary.LittleEndian.Uint32(aux[off+12:])
				}
			}
			for l := 0; l < wideLanes; l++ {
				off := (i + l) * BlockSize
				binary.LittleEndian.PutUint32(dst[off:], s0[l])
				binary.LittleEndian.PutUint32(dst[off+4:], s1[l])
				binary.LittleEndian.PutUint32(dst[off+8:], s2[l])
				binary.LittleEndian.PutUint32(dst[off+12:], s3[l])
			}
		}
	}

	for ; i < n; i++ {
		var x [4]uint32
		loadBlock(&x, src[i*srcStep:])
		if flags&XORInput != 0 {
			var a [4]uint32
			loadBlock(&a, aux[i*auxStep:])
			x[0] ^= a[0]
			x[1] ^= a[1]
			x[2] ^= a[2]
			x[3] ^= a[3]
		}
		if decrypt {
			decryptWords(&keys.rk, keys.rounds, &x)
		} else {
			encryptWords(&keys.rk, keys.rounds, &x)
		}
		if flags&XOROutput != 0 {
			var a [4]uint32
			loadBlock(&a, aux[i*auxStep:])
			x[0] ^= a[0]
			x[1] ^= a[1]
			x[2] ^= a[2]
			x[3] ^= a[3]
		}
		storeBlock(dst[i*BlockSize:], &x)
	}
}
