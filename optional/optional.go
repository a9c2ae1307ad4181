// Package optional provides a Value type for results that may be absent,
// such as the smallest element of an empty container.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All returns an iterator that yields the value if present, or yields nothing if empty.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the contained value and true, or the zero value and false.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the contained value, or defaultValue when empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
