//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when built with assertions_disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when built with assertions_disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// NotNil is a no-op when built with assertions_disabled.
func NotNil[T any](value *T, args ...any) {
	// Intentionally left blank
}
