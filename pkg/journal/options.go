package journal

import (
	"log/slog"

	"github.com/aretw0/vimjournal/pkg/core"
)

// Default tuning values.
const (
	DefaultMinGap        = 2
	DefaultMaxBackground = 16
)

// Filter selects records.
type Filter func(core.Record) bool

// options holds the configuration shared by the pipeline stages.
type options struct {
	logger        *slog.Logger
	filter        Filter
	strict        bool
	minGap        int
	maxBackground int
	anchor        core.Seq
}

// Option defines a functional option for configuring a pipeline stage.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		strict:        true,
		minGap:        DefaultMinGap,
		maxBackground: DefaultMaxBackground,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithLogger sets the logger that receives data warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilter restricts the emitted records. Records failing the filter
// still bound the intervals of their neighbours.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithStrict controls whether a skip window that passes over a record
// matching the filter stops iteration with a *core.SequenceError (true,
// the default) or only logs a warning.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLenient is shorthand for WithStrict(false).
func WithLenient() Option {
	return WithStrict(false)
}

// WithMinGap sets the tolerance in minutes used by StripDurationTags.
func WithMinGap(minutes int) Option {
	return func(o *options) {
		o.minGap = minutes
	}
}

// WithMaxBackground bounds how many background or indented records the
// engine passes over while looking for the end of an interval. Zero or
// less removes the bound.
func WithMaxBackground(n int) Option {
	return func(o *options) {
		o.maxBackground = n
	}
}

// WithAnchor seeds the parser's last exact sequence, used to flag records
// that go back in time. Pass the Anchor of a previous parser to continue
// a journal split over several inputs.
func WithAnchor(seq core.Seq) Option {
	return func(o *options) {
		o.anchor = seq
	}
}
