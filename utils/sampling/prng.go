// Package sampling implements deterministic and system-entropy sources of
// random bytes and uniform floats.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the system entropy source. Safe for concurrent
// use, but the stream is not reproducible.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG backed by the system entropy source.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG produces a deterministic stream of random bytes from a key using
// the blake2b extendable-output function. Two instances built from the same
// key read identical streams, which makes every sampler in this module
// reproducible.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{key: append([]byte(nil), key...), xof: xof}, nil
}

// NewSeededPRNG creates a KeyedPRNG whose key is derived from an arbitrary
// label by hashing it with blake3. It allows human-readable seeds such as
// experiment names.
func NewSeededPRNG(label string) (*KeyedPRNG, error) {
	sum := blake3.Sum256([]byte(label))
	return NewKeyedPRNG(sum[:])
}

// Key returns a copy of the key used to seed the PRNG. The value can be
// passed to NewKeyedPRNG to reproduce the stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
