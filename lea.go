// Package lea provides a pure-Go implementation of the LEA block cipher
// (128-bit block size with 128, 192 and 256-bit keys).
//
// LEA is an ARX cipher: the round function uses only 32-bit addition,
// rotation and XOR, which makes it fast in software on common processors.
//
// Example usage:
//
//	block, err := lea.NewCipher(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext := make([]byte, lea.BlockSize)
//	block.Encrypt(ciphertext, plaintext)
//
// The package also exposes direction-bound Encrypter and Decrypter types
// with a bulk ProcessBlocks path for mode-of-operation layers that want
// to push many blocks through the cipher in one call.
package lea

import (
	"crypto/cipher"
	"strconv"
)

// BlockSize is the LEA block size in bytes.
const BlockSize = 16

// KeySizes returns the key lengths, in bytes, accepted by NewCipher,
// NewEncrypter and NewDecrypter.
func KeySizes() []int {
	return []int{16, 24, 32}
}

// KeySizeError is returned when a key is not 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "lea: invalid key size " + strconv.Itoa(int(k))
}

// Encrypter applies the forward LEA transform to single blocks or
// batches of blocks. It is safe for concurrent use once constructed.
type Encrypter struct {
	keys *roundKeys
}

// Decrypter applies the inverse LEA transform. It shares no state with
// any Encrypter unless both were produced by the same NewCipher call,
// in which case they share one read-only key schedule.
type Decrypter struct {
	keys *roundKeys
}

// NewEncrypter expands key into a round-key schedule bound to the
// encryption direction. The key must be 16, 24 or 32 bytes.
func NewEncrypter(key []byte) (*Encrypter, error) {
	keys, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &Encrypter{keys: keys}, nil
}

// NewDecrypter expands key into a round-key schedule bound to the
// decryption direction. The key must be 16, 24 or 32 bytes.
func NewDecrypter(key []byte) (*Decrypter, error) {
	keys, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &Decrypter{keys: keys}, nil
}

// BlockSize returns the cipher's block size in bytes.
func (e *Encrypter) BlockSize() int { return BlockSize }

// Rounds returns the number of rounds derived from the key length.
func (e *Encrypter) Rounds() int { return e.keys.rounds }

// ProcessBlock encrypts the 16-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (e *Encrypter) ProcessBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}
	var x [4]uint32
	loadBlock(&x, src)
	encryptWords(&e.keys.rk, e.keys.rounds, &x)
	storeBlock(dst, &x)
}

// ProcessAndXORBlock encrypts the 16-byte block in src and XORs the
// result with the 16-byte xor block before writing it to dst.
func (e *Encrypter) ProcessAndXORBlock(dst, src, xor []byte) {
	if len(src) < BlockSize || len(xor) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}
	var x, a [4]uint32
	loadBlock(&x, src)
	loadBlock(&a, xor)
	encryptWords(&e.keys.rk, e.keys.rounds, &x)
	x[0] ^= a[0]
	x[1] ^= a[1]
	x[2] ^= a[2]
	x[3] ^= a[3]
	storeBlock(dst, &x)
}

// BlockSize returns the cipher's block size in bytes.
func (d *Decrypter) BlockSize() int { return BlockSize }

// Rounds returns the number of rounds derived from the key length.
func (d *Decrypter) Rounds() int { return d.keys.rounds }

// ProcessBlock decrypts the 16-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (d *Decrypter) ProcessBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}
	var x [4]uint32
	loadBlock(&x, src)
	decryptWords(&d.keys.rk, d.keys.rounds, &x)
	storeBlock(dst, &x)
}

// ProcessAndXORBlock decrypts the 16-byte block in src and XORs the
// result with the 16-byte xor block before writing it to dst.
func (d *Decrypter) ProcessAndXORBlock(dst, src, xor []byte) {
	if len(src) < BlockSize || len(xor) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}
	var x, a [4]uint32
	loadBlock(&x, src)
	loadBlock(&a, xor)
	decryptWords(&d.keys.rk, d.keys.rounds, &x)
	x[0] ^= a[0]
	x[1] ^= a[1]
	x[2] ^= a[2]
	x[3] ^= a[3]
	storeBlock(dst, &x)
}

// Cipher is a crypto/cipher.Block over both directions. The two
// directions share one read-only key schedule, so constructing a Cipher
// costs a single key expansion.
type Cipher struct {
	enc Encrypter
	dec Decrypter
}

// NewCipher expands key and returns a cipher.Block usable with the
// standard library's mode-of-operation wrappers (CBC, CTR, CFB, ...).
// The key must be 16, 24 or 32 bytes; any other length returns
// KeySizeError.
func NewCipher(key []byte) (*Cipher, error) {
	keys, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{
		enc: Encrypter{keys: keys},
		dec: Decrypter{keys: keys},
	}, nil
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src into dst.
func (c *Cipher) Encrypt(dst, src []byte) { c.enc.ProcessBlock(dst, src) }

// Decrypt decrypts the 16-byte block in src into dst.
func (c *Cipher) Decrypt(dst, src []byte) { c.dec.ProcessBlock(dst, src) }

var _ cipher.Block = (*Cipher)(nil)
