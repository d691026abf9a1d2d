package lea_test

import (
	"encoding/hex"
	"fmt"

	"github.com/opd-ai/go-lea"
)

// Example of basic block encryption and decryption
func ExampleNewCipher() {
	key, _ := hex.DecodeString("0f1e2d3c4b5a69788796a5b4c3d2e1f0")
	plaintext, _ := hex.DecodeString("101112131415161718191a1b1c1d1e1f")

	block, err := lea.NewCipher(key)
	if err != nil {
		panic(err)
	}

	ciphertext := make([]byte, lea.BlockSize)
	block.Encrypt(ciphertext, plaintext)
	fmt.Printf("%x\n", ciphertext)

	recovered := make([]byte, lea.BlockSize)
	block.Decrypt(recovered, ciphertext)
	fmt.Printf("%x\n", recovered)
	// Output:
	// 9fc84e3528c6c6185532c7a704648bfd
	// 101112131415161718191a1b1c1d1e1f
}

// Example of the bulk processing path
func ExampleEncrypter_ProcessBlocks() {
	key, _ := hex.DecodeString("0f1e2d3c4b5a69788796a5b4c3d2e1f0")
	plaintext, _ := hex.DecodeString("101112131415161718191a1b1c1d1e1f")

	enc, err := lea.NewEncrypter(key)
	if err != nil {
		panic(err)
	}

	// Five copies of the same block, encrypted in one call.
	src := make([]byte, 0, 5*lea.BlockSize)
	for i := 0; i < 5; i++ {
		src = append(src, plaintext...)
	}

	dst := make([]byte, len(src))
	enc.ProcessBlocks(dst, src, nil, 0)

	fmt.Printf("%x\n", dst[:lea.BlockSize])
	fmt.Printf("%x\n", dst[4*lea.BlockSize:])
	// Output:
	// 9fc84e3528c6c6185532c7a704648bfd
	// 9fc84e3528c6c6185532c7a704648bfd
}

// Example of key size discovery
func ExampleKeySizes() {
	fmt.Println(lea.KeySizes())
	// Output: [16 24 32]
}
