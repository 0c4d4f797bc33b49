package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrNoFiles is returned by Expand when no pattern matched anything.
var ErrNoFiles = errors.New("no journal files matched")

// Reader reads records from a list of files in order, as one journal.
// The last exact sequence of a file anchors the next one, so ordering
// checks carry across file boundaries.
type Reader struct {
	paths  []string
	opts   []journal.Option
	stdin  io.Reader
	cur    *journal.Parser
	closer io.Closer
	anchor core.Seq
	name   string
	err    error
}

// NewReader creates a reader over paths. Stdin ("-") may appear once.
func NewReader(paths []string, opts ...journal.Option) *Reader {
	return &Reader{paths: slices.Clone(paths), opts: opts, stdin: os.Stdin}
}

// NewStdinReader reads a single journal from r.
func NewStdinReader(r io.Reader, opts ...journal.Option) *Reader {
	return &Reader{paths: []string{Stdin}, opts: opts, stdin: r}
}

// SetStdin replaces os.Stdin as the source for the "-" path.
func (r *Reader) SetStdin(stdin io.Reader) {
	r.stdin = stdin
}

// Next implements journal.RecordIterator.
func (r *Reader) Next() (core.Record, bool) {
	for r.err == nil {
		if r.cur == nil {
			if len(r.paths) == 0 {
				return core.Record{}, false
			}
			if err := r.open(r.paths[0]); err != nil {
				r.err = err
				return core.Record{}, false
			}
			r.paths = r.paths[1:]
		}
		if rec, ok := r.cur.Next(); ok {
			return rec, true
		}
		if err := r.cur.Err(); err != nil {
			r.err = fmt.Errorf("read %s: %w", r.name, err)
		}
		r.anchor = r.cur.Anchor()
		r.cur = nil
		r.closeCurrent()
	}
	return core.Record{}, false
}

// Current names the file being read.
func (r *Reader) Current() string { return r.name }

// Err returns the first open or read error.
func (r *Reader) Err() error { return r.err }

// Close releases the open file, if any.
func (r *Reader) Close() error {
	r.paths = nil
	r.cur = nil
	return r.closeCurrent()
}

func (r *Reader) open(path string) error {
	var src io.Reader
	if path == Stdin {
		src = r.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		src = f
		r.closer = f
	}
	r.name = path
	opts := r.opts
	if r.anchor != "" {
		opts = append(slices.Clone(r.opts), journal.WithAnchor(r.anchor))
	}
	r.cur = journal.NewParser(src, opts...)
	return nil
}

func (r *Reader) closeCurrent() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// ParseFile reads every record of one journal file.
func ParseFile(path string, opts ...journal.Option) ([]core.Record, error) {
	r := NewReader([]string{path}, opts...)
	defer r.Close()
	records := journal.Collect(r)
	return records, r.Err()
}

// Expand resolves glob patterns (doublestar syntax, "**" included) into
// file paths. Plain paths and "-" pass through untouched; matches of each
// pattern are returned in lexical order.
func Expand(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if pattern == Stdin || !hasMeta(pattern) {
			out = append(out, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	if len(out) == 0 && len(patterns) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, patterns)
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

var _ journal.RecordIterator = (*Reader)(nil)
