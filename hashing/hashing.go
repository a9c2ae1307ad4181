package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"iter"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a hex-encoded string.
// It is much faster than Sha256 and is not cryptographic.
func Xxh3(hashable Hashable) (string, error) {
	return sum(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return sum(xxhash.New64(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sequence adapts an ordered sequence of Hashable elements into a single Hashable.
// Each element is framed with its encoded length so that different splits of the
// same bytes ("ab","c" vs "a","bc") hash differently.
func Sequence[T Hashable](seq iter.Seq[T]) Hashable {
	return sequence[T]{seq: seq}
}

type sequence[T Hashable] struct {
	seq iter.Seq[T]
}

func (s sequence[T]) UpdateHash(h hash.Hash) error {
	var (
		buf   frame
		count uint64
	)

	for elem := range s.seq {
		buf.Reset()

		if err := elem.UpdateHash(&buf); err != nil {
			return err
		}

		if err := writeFrame(h, buf.data); err != nil {
			return err
		}

		count++
	}

	var trailer [8]byte

	binary.BigEndian.PutUint64(trailer[:], count)

	_, err := h.Write(trailer[:])

	return err
}

func writeFrame(h hash.Hash, data []byte) error {
	var size [8]byte

	binary.BigEndian.PutUint64(size[:], uint64(len(data)))

	if _, err := h.Write(size[:]); err != nil {
		return err
	}

	_, err := h.Write(data)

	return err
}

// frame buffers one element's hash input so it can be length-prefixed.
// Only Write is used by Hashable implementations; the other methods satisfy hash.Hash.
type frame struct {
	data []byte
}

func (f *frame) Write(p []byte) (int, error) {
	f.data = append(f.data, p...)

	return len(p), nil
}

func (f *frame) Sum(b []byte) []byte { return append(b, f.data...) }
func (f *frame) Reset()              { f.data = f.data[:0] }
func (f *frame) Size() int           { return len(f.data) }
func (f *frame) BlockSize() int      { return 1 }

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
