// Package sampling provides a deterministic keyed PRNG for reproducible
// randomized tests.
package sampling

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic pseudo-random byte stream: two instances
// created with the same key produce the same stream. It is backed by the
// blake2b XOF.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG keyed with key, which must be at
// most 64 bytes long.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	p := &KeyedPRNG{key: key}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPRNG creates a KeyedPRNG with a fresh random key.
func NewPRNG() (*KeyedPRNG, error) {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return NewKeyedPRNG(key)
}

// Read fills b with bytes from the stream.
func (p *KeyedPRNG) Read(b []byte) (int, error) {
	return p.xof.Read(b)
}

// Reset rewinds the stream to its beginning.
func (p *KeyedPRNG) Reset() error {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, p.key)
	if err != nil {
		return err
	}
	p.xof = xof
	return nil
}

// Key returns the key used to seed the stream.
func (p *KeyedPRNG) Key() []byte {
	key := make([]byte, len(p.key))
	copy(key, p.key)
	return key
}
