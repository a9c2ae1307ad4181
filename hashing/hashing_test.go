package hashing

import (
	"errors"
	"hash"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken hashable")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBroken
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "string with spaces",
			input:    HashableString("hello world"),
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHashFuncs(t *testing.T) {
	t.Parallel()

	funcs := map[string]struct {
		fn     HashFunc
		hexLen int
	}{
		"sha256":   {fn: Sha256, hexLen: 64},
		"xxh3":     {fn: Xxh3, hexLen: 16},
		"xxhash64": {fn: XXHash64, hexLen: 16},
	}

	for name, tc := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := tc.fn(HashableString("hello"))
			require.NoError(t, err)
			assert.Len(t, first, tc.hexLen)

			again, err := tc.fn(HashableString("hello"))
			require.NoError(t, err)
			assert.Equal(t, first, again)

			other, err := tc.fn(HashableString("world"))
			require.NoError(t, err)
			assert.NotEqual(t, first, other)

			_, err = tc.fn(brokenHashable{})
			require.ErrorIs(t, err, errBroken)
		})
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("framing separates element boundaries", func(t *testing.T) {
		t.Parallel()

		a, err := Sha256(Sequence(slices.Values([]HashableString{"ab", "c"})))
		require.NoError(t, err)

		b, err := Sha256(Sequence(slices.Values([]HashableString{"a", "bc"})))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("same elements hash the same", func(t *testing.T) {
		t.Parallel()

		a, err := Xxh3(Sequence(slices.Values([]HashableString{"x", "y", "y"})))
		require.NoError(t, err)

		b, err := Xxh3(Sequence(slices.Values([]HashableString{"x", "y", "y"})))
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("empty and single empty element differ", func(t *testing.T) {
		t.Parallel()

		empty, err := Sha256(Sequence(slices.Values([]HashableString{})))
		require.NoError(t, err)

		one, err := Sha256(Sequence(slices.Values([]HashableString{""})))
		require.NoError(t, err)

		assert.NotEqual(t, empty, one)
	})

	t.Run("element error is returned", func(t *testing.T) {
		t.Parallel()

		_, err := Sha256(Sequence(slices.Values([]Hashable{HashableString("ok"), brokenHashable{}})))
		require.ErrorIs(t, err, errBroken)
	})
}
