package lea

import (
	"encoding/hex"
	"fmt"
)

// TestVector is a known-answer triple from the LEA reference
// specification. These vectors are the interoperability oracle: a
// transcription error in the constant tables still round-trips with
// itself but fails against them.
type TestVector struct {
	Name       string
	Key        string // Hex-encoded key (16, 24 or 32 bytes)
	Plaintext  string // Hex-encoded 16-byte plaintext block
	Ciphertext string // Hex-encoded 16-byte ciphertext block
}

// KnownAnswerVectors holds the published reference vectors for each of
// the three key sizes. Exported for external validation tools.
var KnownAnswerVectors = []TestVector{
	{
		Name:       "LEA-128",
		Key:        "0f1e2d3c4b5a69788796a5b4c3d2e1f0",
		Plaintext:  "101112131415161718191a1b1c1d1e1f",
		Ciphertext: "9fc84e3528c6c6185532c7a704648bfd",
	},
	{
		Name:       "LEA-192",
		Key:        "0f1e2d3c4b5a69788796a5b4c3d2e1f0f0e1d2c3b4a59687",
		Plaintext:  "202122232425262728292a2b2c2d2e2f",
		Ciphertext: "6fb95e325aad1b878cdcf5357674c6f2",
	},
	{
		Name:       "LEA-256",
		Key:        "0f1e2d3c4b5a69788796a5b4c3d2e1f0f0e1d2c3b4a5968778695a4b3c2d1e0f",
		Plaintext:  "303132333435363738393a3b3c3d3e3f",
		Ciphertext: "d651aff647b189c13a8900ca27f9e197",
	},
}

// KeyBytes returns the decoded key for a test vector.
func (tv *TestVector) KeyBytes() ([]byte, error) {
	key, err := hex.DecodeString(tv.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	return key, nil
}

// PlaintextBytes returns the decoded plaintext block.
func (tv *TestVector) PlaintextBytes() ([]byte, error) {
	pt, err := hex.DecodeString(tv.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("invalid plaintext hex: %w", err)
	}
	if len(pt) != BlockSize {
		return nil, fmt.Errorf("plaintext must be %d bytes, got %d", BlockSize, len(pt))
	}
	return pt, nil
}

// CiphertextBytes returns the decoded ciphertext block.
func (tv *TestVector) CiphertextBytes() ([]byte, error) {
	ct, err := hex.DecodeString(tv.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext hex: %w", err)
	}
	if len(ct) != BlockSize {
		return nil, fmt.Errorf("ciphertext must be %d bytes, got %d", BlockSize, len(ct))
	}
	return ct, nil
}
