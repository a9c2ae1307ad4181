// Package assert provides panicking checks for conditions that can only fail on a bug.
//
// The checks are active by default. Building with the assertions_disabled tag
// turns every function into a no-op.
package assert

import "fmt"

// failure builds the panic message from the optional args:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the message.
func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
