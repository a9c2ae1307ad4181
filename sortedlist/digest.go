package sortedlist

import (
	"github.com/amp-labs/sortedlist/hashing"
	"github.com/amp-labs/sortedlist/sortable"
)

// HashableSortable is an element that can be both ordered and hashed.
type HashableSortable[T any] interface {
	sortable.Sortable[T]
	hashing.Hashable
}

// Digest hashes the list's elements in ascending order with fn. Two lists
// holding the same multiset of values produce the same digest regardless of
// the order in which the values were added.
func Digest[T HashableSortable[T]](l *SortedList[T], fn hashing.HashFunc) (string, error) {
	return fn(hashing.Sequence(l.All()))
}
