package platform

import (
	"io"
	"log/slog"
	"time"
)

// options holds the internal configuration for a vimjournal session.
type options struct {
	logger       *slog.Logger
	configPath   string
	searchConfig bool
	strict       *bool
	minGap       *int
	maxBg        *int
	debounce     time.Duration
	stdin        io.Reader
	errorHandler func(error)
}

// Option defines a functional option for configuring a session.
type Option func(*options)

func defaultOptions() *options {
	return &options{searchConfig: true}
}

// WithLogger sets the logger that receives data warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfigFile loads settings from path instead of searching for
// ConfigFileName upwards from the working directory.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithoutConfigSearch disables the upward search for a config file.
func WithoutConfigSearch() Option {
	return func(o *options) {
		o.searchConfig = false
	}
}

// WithStrict makes skip-window violations fail (true) or warn (false).
// It overrides the config file.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = &strict
	}
}

// WithMinGap sets the tolerance, in minutes, for stripping duration tags.
func WithMinGap(minutes int) Option {
	return func(o *options) {
		o.minGap = &minutes
	}
}

// WithMaxBackground bounds how many background entries the duration
// engine looks past.
func WithMaxBackground(n int) Option {
	return func(o *options) {
		o.maxBg = &n
	}
}

// WithDebounce sets the quiet period used by Watch.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithStdin replaces os.Stdin as the source for the "-" path.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching. Without it they are only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
