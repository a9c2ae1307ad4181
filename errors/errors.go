// Package errors holds the sentinel errors shared by the containers in this module
// and a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrIndexOutOfRange is returned by positional reads when the index is
	// outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvariantViolated is wrapped by every failure reported from a tree
	// validation walk.
	ErrInvariantViolated = errors.New("tree invariant violated")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when a walk should report every problem it finds rather than stopping at the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
