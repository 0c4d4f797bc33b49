package journal

import (
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/aretw0/vimjournal/pkg/core"
)

// RecordIterator is a pull cursor over records.
type RecordIterator interface {
	// Next returns the next record, or false when the input is exhausted.
	Next() (core.Record, bool)
}

// Parser reads records lazily from a line stream. It never holds more
// than the record being assembled and one pushed-back header line.
type Parser struct {
	lines  *lineScanner
	logger *slog.Logger
	anchor core.Seq
	err    error
	done   bool
}

// NewParser returns a Parser reading from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	o := buildOptions(opts)
	return &Parser{
		lines:  newLineScanner(r),
		logger: o.logger,
		anchor: o.anchor,
	}
}

// Parse is shorthand for NewParser(r, opts...).All().
func Parse(r io.Reader, opts ...Option) iter.Seq[core.Record] {
	return NewParser(r, opts...).All()
}

// ParseString parses an in-memory journal.
func ParseString(s string, opts ...Option) []core.Record {
	var out []core.Record
	for r := range Parse(strings.NewReader(s), opts...) {
		out = append(out, r)
	}
	return out
}

// Next implements RecordIterator. Lines before the first header are
// skipped; the body runs until the next header or the end of input.
func (p *Parser) Next() (core.Record, bool) {
	if p.done {
		return core.Record{}, false
	}
	var header string
	for {
		line, ok := p.lines.next()
		if !ok {
			p.finish()
			return core.Record{}, false
		}
		if core.IsHeader(line) {
			header = line
			break
		}
	}

	var body []string
	for {
		line, ok := p.lines.next()
		if !ok {
			break
		}
		if core.IsHeader(line) {
			p.lines.unread(line)
			break
		}
		body = append(body, line)
	}

	rec, err := core.ParseHeader(header)
	if err != nil {
		// IsHeader accepted the line, so this cannot happen
		p.err = err
		p.done = true
		return core.Record{}, false
	}
	rec.Body = joinBody(body)
	p.track(rec)
	return rec, true
}

// All adapts the parser to a range-over-func sequence.
func (p *Parser) All() iter.Seq[core.Record] {
	return func(yield func(core.Record) bool) {
		for {
			rec, ok := p.Next()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}

// Err returns the first read error, if any.
func (p *Parser) Err() error { return p.err }

// Anchor returns the last exact sequence seen so far.
func (p *Parser) Anchor() core.Seq { return p.anchor }

func (p *Parser) finish() {
	p.done = true
	if err := p.lines.err(); err != nil && p.err == nil {
		p.err = err
	}
}

// track flags records that go back in time and advances the anchor.
func (p *Parser) track(rec core.Record) {
	if p.anchor != "" && core.Compare(rec.Seq, p.anchor) < 0 {
		p.logger.Warn("entry out of order",
			"seq", string(rec.Seq),
			"previous", string(p.anchor),
		)
	}
	if rec.IsExact() {
		p.anchor = rec.Seq
	}
}

// joinBody joins lines with '\n' after dropping blank lines at both ends.
func joinBody(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
