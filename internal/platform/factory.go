package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/vimjournal/pkg/adapters/fs"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// Session ties the configuration, the logger and the filesystem adapter
// together for the commands.
type Session struct {
	Config Config
	logger *slog.Logger
	o      *options
}

// New builds a session. The config file is either the one given through
// WithConfigFile or the nearest ConfigFileName above the working directory.
func New(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg Config
	switch {
	case o.configPath != "":
		c, err := LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	case o.searchConfig:
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err := FindConfig(wd)
		if err != nil && !errors.Is(err, ErrNoConfig) {
			return nil, err
		}
		if path != "" {
			if cfg, err = LoadConfig(path); err != nil {
				return nil, err
			}
			logger.Debug("config loaded", "path", path)
		}
	}

	return &Session{Config: cfg, logger: logger, o: o}, nil
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Strict reports whether skip-window violations fail.
func (s *Session) Strict() bool {
	if s.o.strict != nil {
		return *s.o.strict
	}
	if s.Config.Strict != nil {
		return *s.Config.Strict
	}
	return true
}

// JournalOptions returns the pipeline options for this session, config
// first, then explicit options, then extra.
func (s *Session) JournalOptions(extra ...journal.Option) []journal.Option {
	opts := []journal.Option{journal.WithLogger(s.logger)}
	opts = append(opts, s.Config.JournalOptions()...)
	if s.o.strict != nil {
		opts = append(opts, journal.WithStrict(*s.o.strict))
	}
	if s.o.minGap != nil {
		opts = append(opts, journal.WithMinGap(*s.o.minGap))
	}
	if s.o.maxBg != nil {
		opts = append(opts, journal.WithMaxBackground(*s.o.maxBg))
	}
	return append(opts, extra...)
}

// Open expands patterns and returns a reader over the matching journals.
// With no patterns it falls back to the configured journals, then stdin.
func (s *Session) Open(patterns []string, extra ...journal.Option) (*fs.Reader, error) {
	if len(patterns) == 0 {
		patterns = s.Config.Journals
	}
	opts := s.JournalOptions(extra...)
	if len(patterns) == 0 {
		return fs.NewStdinReader(s.stdin(), opts...), nil
	}
	paths, err := fs.Expand(patterns)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("reading journals", "files", len(paths))
	r := fs.NewReader(paths, opts...)
	r.SetStdin(s.stdin())
	return r, nil
}

// Serializer returns the serializer for format, with the session's
// duration settings for the journal format.
func (s *Session) Serializer(format string) (fs.Serializer, error) {
	return fs.SerializerFor(format, s.Strict(), s.JournalOptions()...)
}

// Watch creates a watcher running fn on each settled save of path.
func (s *Session) Watch(path string, fn fs.ChangeFunc) (*fs.Watcher, error) {
	debounce := s.o.debounce
	if debounce == 0 && s.Config.Debounce != "" {
		d, err := time.ParseDuration(s.Config.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid debounce %q: %w", s.Config.Debounce, err)
		}
		debounce = d
	}
	opts := []fs.WatchOption{fs.WithWatchLogger(s.logger)}
	if debounce > 0 {
		opts = append(opts, fs.WithDebounce(debounce))
	}
	if s.o.errorHandler != nil {
		opts = append(opts, fs.WithErrorHandler(s.o.errorHandler))
	}
	return fs.NewWatcher(path, fn, opts...), nil
}

// RunWatch starts a watcher, triggers fn once, and blocks until ctx ends.
func (s *Session) RunWatch(ctx context.Context, path string, fn fs.ChangeFunc) error {
	w, err := s.Watch(path, fn)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	w.Trigger(ctx)
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return w.Stop(stopCtx)
}

func (s *Session) stdin() io.Reader {
	if s.o.stdin != nil {
		return s.o.stdin
	}
	return os.Stdin
}
