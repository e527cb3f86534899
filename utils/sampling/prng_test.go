package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	t.Run("Deterministic", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		bufA := make([]byte, 1024)
		bufB := make([]byte, 1024)
		_, err = a.Read(bufA)
		require.NoError(t, err)
		_, err = b.Read(bufB)
		require.NoError(t, err)

		require.Equal(t, bufA, bufB)
	})

	t.Run("Reset", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		first := make([]byte, 64)
		_, err = prng.Read(first)
		require.NoError(t, err)

		prng.Reset()

		again := make([]byte, 64)
		_, err = prng.Read(again)
		require.NoError(t, err)

		require.Equal(t, first, again)
	})

	t.Run("KeyRoundTrip", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, prng.Key())
	})

	t.Run("SeededFromLabel", func(t *testing.T) {
		a, err := NewSeededPRNG("run-0")
		require.NoError(t, err)
		b, err := NewSeededPRNG("run-0")
		require.NoError(t, err)
		c, err := NewSeededPRNG("run-1")
		require.NoError(t, err)

		bufA := make([]byte, 64)
		bufB := make([]byte, 64)
		bufC := make([]byte, 64)
		a.Read(bufA)
		b.Read(bufB)
		c.Read(bufC)

		require.Equal(t, bufA, bufB)
		require.NotEqual(t, bufA, bufC)
	})
}

func TestThreadSafePRNG(t *testing.T) {
	prng, err := NewPRNG()
	require.NoError(t, err)

	a := make([]byte, 64)
	n, err := prng.Read(a)
	require.NoError(t, err)
	require.Equal(t, 64, n)

	b := make([]byte, 64)
	_, err = prng.Read(b)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRandFloat64(t *testing.T) {
	prng, err := NewSeededPRNG("floats")
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		f := RandFloat64(prng, 0, 1)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}
