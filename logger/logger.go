// Package logger configures log/slog for the binaries in this module and carries
// a request-scoped logger through context.Context.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/sortedlist/envutil"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

const loggerKey contextKey = "logger"

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It installs the logger as the slog default, redirects the legacy log
// package into it, and returns it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := New(opts)

	slog.SetDefault(logger)

	// Set up the legacy logger (we won't be using this directly, but 3rd party packages might)
	def := log.Default()
	*def = *slog.NewLogLogger(logger.Handler(), slog.LevelInfo)

	return logger
}

// New builds a logger from opts without touching global state.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the destination of log records.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithLevel overrides the minimum level read from the environment.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// ConfigureLogging configures logging for the application from the environment:
// SORTEDLIST_LOG_JSON (default false) and SORTEDLIST_LOG_LEVEL (default info).
// Explicit opts win over the environment.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem: app,
		JSON:      envutil.Bool("SORTEDLIST_LOG_JSON", envutil.Default(false)).ValueOrElse(false),
		MinLevel:  envutil.SlogLevel("SORTEDLIST_LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrElse(slog.LevelInfo),
		Output:    os.Stderr,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// With returns a context carrying logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey, logger)
}

// Get returns the logger stored in ctx, or slog.Default() if there is none.
func Get(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return slog.Default()
}
