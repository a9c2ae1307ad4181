// Package sortedlist provides SortedList, a sorted multiset with positional access.
//
// SortedList keeps elements in ascending order, allows duplicates and answers
// "element at position i" and "position of value v" in O(log n). It is a thin
// wrapper over an order-statistic AVL tree from package avl.
//
// Example:
//
//	list := sortedlist.New[sortable.Int]()
//	list.Add(5)
//	list.Add(5)
//	list.Add(20)
//	list.Add(10)
//
//	list.Count()      // 4
//	list.IndexOf(10)  // 2
//	v, err := list.At(3) // 20, nil
//
//	for v := range list.All() {
//	    fmt.Println(v) // 5 5 10 20
//	}
//
// A SortedList is not safe for concurrent use.
package sortedlist

import (
	"iter"

	"github.com/amp-labs/sortedlist/avl"
	"github.com/amp-labs/sortedlist/optional"
	"github.com/amp-labs/sortedlist/sortable"
)

// NotFound is returned by IndexOf when the value is not in the list.
const NotFound = avl.NotFound

// SortedList is a sorted multiset. The zero value is an empty list.
type SortedList[T sortable.Sortable[T]] struct {
	tree avl.Tree[T]
}

// New creates a new empty list.
func New[T sortable.Sortable[T]]() *SortedList[T] {
	return &SortedList[T]{}
}

// Of creates a list holding the given values.
func Of[T sortable.Sortable[T]](values ...T) *SortedList[T] {
	l := New[T]()
	l.AddAll(values...)

	return l
}

// Count returns the number of elements, counting duplicates.
func (l *SortedList[T]) Count() int {
	return l.tree.Len()
}

// Add inserts value. An element equal to existing ones is placed before them.
func (l *SortedList[T]) Add(value T) {
	l.tree.Insert(value)
}

// AddAll inserts each value in turn.
func (l *SortedList[T]) AddAll(values ...T) {
	for _, value := range values {
		l.tree.Insert(value)
	}
}

// Remove deletes one occurrence of value and reports whether it was present.
// Which of several equal elements is removed is unspecified.
func (l *SortedList[T]) Remove(value T) bool {
	return l.tree.Remove(value)
}

// IndexOf returns the smallest index holding value, or NotFound.
func (l *SortedList[T]) IndexOf(value T) int {
	return l.tree.IndexOf(value)
}

// Contains reports whether value is in the list.
func (l *SortedList[T]) Contains(value T) bool {
	return l.tree.Contains(value)
}

// At returns the element at index. It fails with errors.ErrIndexOutOfRange
// when index is outside [0, Count()).
func (l *SortedList[T]) At(index int) (T, error) {
	return l.tree.At(index)
}

// TryAt is At with the bounds failure folded into an empty Value.
func (l *SortedList[T]) TryAt(index int) optional.Value[T] {
	v, err := l.tree.At(index)
	if err != nil {
		return optional.None[T]()
	}

	return optional.Some(v)
}

// First returns the smallest element, if any.
func (l *SortedList[T]) First() optional.Value[T] {
	return l.tree.Min()
}

// Last returns the largest element, if any.
func (l *SortedList[T]) Last() optional.Value[T] {
	return l.tree.Max()
}

// All returns a lazy ascending sequence of the elements. Every range over it
// starts from the list's current contents. The list must not be modified
// during the range.
func (l *SortedList[T]) All() iter.Seq[T] {
	return l.tree.All()
}

// Backward returns a lazy descending sequence of the elements.
func (l *SortedList[T]) Backward() iter.Seq[T] {
	return l.tree.Backward()
}

// Entries returns all elements as a new slice, in ascending order.
func (l *SortedList[T]) Entries() []T {
	if l.Count() == 0 {
		return nil
	}

	entries := make([]T, 0, l.Count())
	for v := range l.tree.All() {
		entries = append(entries, v)
	}

	return entries
}

// Clear removes all elements.
func (l *SortedList[T]) Clear() {
	l.tree.Clear()
}

// Validate checks the internal tree invariants; see avl.Tree.Validate.
func (l *SortedList[T]) Validate() error {
	return l.tree.Validate()
}
