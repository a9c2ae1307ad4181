// Package sortable provides the ordering constraint used by sorted containers and wrapper types for primitives.
package sortable

// Sortable is implemented by types with a total order. Equals and LessThan must agree:
// for any a and b exactly one of a.LessThan(b), b.LessThan(a), a.Equals(b) holds.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare returns -1 if a sorts before b, +1 if a sorts after b, and 0 if they are equal.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}
