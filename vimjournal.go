package vimjournal

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/vimjournal/internal/platform"
	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// --- Types ---

// Record is one journal entry.
type Record = core.Record

// DatedRecord is a record with its inferred duration in minutes.
type DatedRecord = core.DatedRecord

// Seq is the timestamp identifier of a record.
type Seq = core.Seq

// Totals maps tags or days to minutes.
type Totals = journal.Totals

// Filter selects records.
type Filter = journal.Filter

// Session reads journals with a resolved configuration.
type Session = platform.Session

// --- Configuration ---

// Option defines a functional option for configuring a session.
type Option = platform.Option

// WithLogger sets the logger that receives data warnings.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConfigFile reads settings from path.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithoutConfigSearch ignores .vimjournal.yaml files.
func WithoutConfigSearch() Option {
	return platform.WithoutConfigSearch()
}

// WithStrict makes skip windows that hide a filtered entry fail.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithMinGap sets the tolerance used when stripping duration tags.
func WithMinGap(minutes int) Option {
	return platform.WithMinGap(minutes)
}

// WithMaxBackground bounds the background lookahead.
func WithMaxBackground(n int) Option {
	return platform.WithMaxBackground(n)
}

// WithDebounce sets the quiet period of Watch.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithStdin replaces os.Stdin as the "-" journal.
func WithStdin(r io.Reader) Option {
	return platform.WithStdin(r)
}

// WithWatcherErrorHandler receives errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a session.
func New(opts ...Option) (*Session, error) {
	return platform.New(opts...)
}

// --- Operations ---

// Parse reads the records of an in-memory journal.
func Parse(text string) []Record {
	return journal.ParseString(text)
}

// Durations infers the duration of each record.
func Durations(records []Record, opts ...journal.Option) ([]DatedRecord, error) {
	return journal.Durations(journal.FromSlice(records), opts...)
}

// SumDurationsByTag totals minutes per tag.
func SumDurationsByTag(records []Record, opts ...journal.Option) (Totals, error) {
	return journal.SumDurationsByTag(journal.FromSlice(records), opts...)
}
