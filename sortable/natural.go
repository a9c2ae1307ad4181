package sortable

import (
	"hash"

	"facette.io/natsort"

	"github.com/amp-labs/sortedlist/hashing"
)

// NaturalString orders strings the way a person would, treating runs of digits
// as numbers: "file2" sorts before "file10".
//
// Equality is still exact string equality, so "a01" and "a1" are distinct elements
// even though neither is naturally less than the other. Ties of that kind are
// broken bytewise to keep the order total.
type NaturalString string

var (
	_ Sortable[NaturalString] = NaturalString("")
	_ hashing.Hashable        = NaturalString("")
)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)
	if a == b {
		return false
	}

	// natsort.Compare is not strict: it reports true both ways for strings whose
	// chunks compare equal, such as "a01" and "a1".
	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
	if ab != ba {
		return ab
	}

	return a < b
}

func (s NaturalString) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(s).UpdateHash(h)
}
