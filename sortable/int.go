package sortable

import (
	"encoding/binary"
	"hash"

	"github.com/amp-labs/sortedlist/hashing"
)

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be stored
// in sorted containers such as sortedlist.SortedList.
//
// Example:
//
//	list := sortedlist.New[sortable.Int]()
//	list.Add(sortable.Int(5))
//	list.Add(sortable.Int(3))
//	list.Add(sortable.Int(5))
//	// Iterating yields: 3, 5, 5 (sorted order, duplicates kept)
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var (
	_ Sortable[Int]    = Int(0)
	_ hashing.Hashable = Int(0)
)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// UpdateHash writes the value as 8 big-endian bytes.
func (i Int) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(int64(i)))

	_, err := h.Write(buf[:])

	return err
}
