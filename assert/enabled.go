//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message built from args.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args))
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil asserts that the given pointer is not nil.
func NotNil[T any](value *T, args ...any) {
	True(value != nil, args...)
}
