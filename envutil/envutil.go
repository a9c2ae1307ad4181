package envutil

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int returns a Reader that parses the variable as a base-10 integer.
func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel returns a Reader that accepts debug, info, warn or error (any case).
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseLevel), opts)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
