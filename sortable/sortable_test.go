package sortable

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Int
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 2, b: 2, expected: 0},
		{name: "greater", a: 3, b: 2, expected: 1},
		{name: "negative", a: -5, b: 0, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.expected, Compare(tt.b, tt.a))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	assert.True(t, Byte('a').LessThan('b'))
	assert.True(t, Byte('a').Equals('a'))
	assert.True(t, String("apple").LessThan("banana"))
	assert.False(t, String("b").LessThan("a"))
	assert.True(t, String("x").Equals("x"))
	assert.Equal(t, 0, Compare(String("same"), String("same")))
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	t.Run("numbers compare numerically", func(t *testing.T) {
		t.Parallel()

		assert.True(t, NaturalString("file2").LessThan("file10"))
		assert.False(t, NaturalString("file10").LessThan("file2"))
	})

	t.Run("order is total for naturally equal strings", func(t *testing.T) {
		t.Parallel()

		a, b := NaturalString("a01"), NaturalString("a1")

		assert.False(t, a.Equals(b))
		assert.NotEqual(t, a.LessThan(b), b.LessThan(a))
		assert.False(t, a.LessThan(a))
		assert.Equal(t, 0, Compare(a, a))
	})

	t.Run("sorts like a person would", func(t *testing.T) {
		t.Parallel()

		names := []NaturalString{"img12", "img10", "img2", "img1"}
		slices.SortFunc(names, Compare[NaturalString])

		assert.Equal(t, []NaturalString{"img1", "img2", "img10", "img12"}, names)
	})
}

func TestUpdateHash(t *testing.T) {
	t.Parallel()

	h := sha256.New()
	require.NoError(t, Int(1).UpdateHash(h))
	assert.Equal(t, sha256.Sum256([]byte{0, 0, 0, 0, 0, 0, 0, 1}), [32]byte(h.Sum(nil)))

	h.Reset()
	require.NoError(t, Int(-1).UpdateHash(h))
	assert.Equal(t, sha256.Sum256([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}), [32]byte(h.Sum(nil)))

	h.Reset()
	require.NoError(t, String("hi").UpdateHash(h))

	viaNatural := sha256.New()
	require.NoError(t, NaturalString("hi").UpdateHash(viaNatural))
	assert.Equal(t, hex.EncodeToString(h.Sum(nil)), hex.EncodeToString(viaNatural.Sum(nil)))

	h.Reset()
	require.NoError(t, Byte(7).UpdateHash(h))
	assert.Equal(t, sha256.Sum256([]byte{7}), [32]byte(h.Sum(nil)))
}
