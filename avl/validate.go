package avl

import (
	"fmt"

	"github.com/amp-labs/sortedlist/errors"
)

// Validate walks the whole tree and reports every broken invariant: in-order
// sequence not ascending, stale cached height or size, or a node whose subtrees
// differ in height by more than one. Each reported error wraps
// errors.ErrInvariantViolated; a healthy tree returns nil.
//
// Equal elements may sit on either side of one another after rotations, so the
// order check is non-decreasing rather than strict.
// Time complexity: O(n).
func (t *Tree[T]) Validate() error {
	var errs errors.Collection

	checkShape(t.root, &errs)

	var (
		prev     T
		position int
	)

	for v := range t.All() {
		if position > 0 && v.LessThan(prev) {
			errs.Add(fmt.Errorf("%w: element %d (%v) sorts before element %d (%v)",
				errors.ErrInvariantViolated, position, v, position-1, prev))
		}

		prev = v
		position++
	}

	return errs.GetError()
}

// checkShape returns the true height and size of n, recording any node whose
// cached values or balance disagree with them.
func checkShape[T any](n *node[T], errs *errors.Collection) (int, int) {
	if n == nil {
		return 0, 0
	}

	leftHeight, leftSize := checkShape(n.left, errs)
	rightHeight, rightSize := checkShape(n.right, errs)

	actualHeight := 1 + max(leftHeight, rightHeight)
	actualSize := 1 + leftSize + rightSize

	if n.height != actualHeight {
		errs.Add(fmt.Errorf("%w: node %v caches height %d, actual %d",
			errors.ErrInvariantViolated, n, n.height, actualHeight))
	}

	if n.size != actualSize {
		errs.Add(fmt.Errorf("%w: node %v caches size %d, actual %d",
			errors.ErrInvariantViolated, n, n.size, actualSize))
	}

	if bf := leftHeight - rightHeight; bf > 1 || bf < -1 {
		errs.Add(fmt.Errorf("%w: node %v has balance factor %d",
			errors.ErrInvariantViolated, n, bf))
	}

	return actualHeight, actualSize
}
