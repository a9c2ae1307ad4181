package sortable

import (
	"hash"

	"github.com/amp-labs/sortedlist/hashing"
)

// String orders strings bytewise, the same as the < operator.
type String string

var (
	_ Sortable[String] = String("")
	_ hashing.Hashable = String("")
)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(s).UpdateHash(h)
}
