package learngl

import (
	"io/fs"
	"log/slog"
)

// DefaultInfoLogSize bounds driver diagnostic logs fetched after a failed
// compile or link.
const DefaultInfoLogSize = 1024

// Option configures shader program construction.
type Option func(*options)

type options struct {
	fsys         fs.FS
	logger       *slog.Logger
	bestEffort   bool
	infoLogSize  int
	warnUniforms bool
}

func defaultOptions() options {
	return options{
		infoLogSize: DefaultInfoLogSize,
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

// WithFS reads shader files from fsys instead of the operating system.
// Paths are then interpreted as fs.FS paths (slash-separated, unrooted).
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLogger sets the logger used for diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBestEffort switches construction to log-and-continue: read, compile
// and link failures are logged and collected on the program instead of being
// returned. A source file that cannot be read compiles as empty source.
func WithBestEffort() Option {
	return func(o *options) {
		o.bestEffort = true
	}
}

// WithInfoLogSize sets the maximum number of bytes fetched from a driver
// diagnostic log. Values <= 0 keep the default.
func WithInfoLogSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.infoLogSize = n
		}
	}
}

// WithMissingUniformWarnings logs a warning the first time a uniform name
// does not resolve to a location. Setting such a uniform stays a no-op.
func WithMissingUniformWarnings() Option {
	return func(o *options) {
		o.warnUniforms = true
	}
}
