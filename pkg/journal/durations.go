package journal

import (
	"fmt"
	"iter"

	"github.com/aretw0/introspection"

	"github.com/aretw0/vimjournal/pkg/core"
)

// Engine attaches a duration to every record of a stream. A record's
// duration comes from its duration tag, or else from the gap up to the
// record that closes its interval.
type Engine struct {
	win  *window
	opts *options
	err  error

	emitted  int
	warnings int
}

// NewEngine returns an Engine reading from src.
func NewEngine(src RecordIterator, opts ...Option) *Engine {
	return &Engine{win: newWindow(src), opts: buildOptions(opts)}
}

// Durations runs an Engine over src and collects the result.
func Durations(src RecordIterator, opts ...Option) ([]core.DatedRecord, error) {
	e := NewEngine(src, opts...)
	var out []core.DatedRecord
	for {
		rec, ok := e.Next()
		if !ok {
			return out, e.Err()
		}
		out = append(out, rec)
	}
}

// Next returns the next record passing the filter together with its
// duration. It returns false at the end of the stream or after an error.
func (e *Engine) Next() (core.DatedRecord, bool) {
	if e.err != nil {
		return core.DatedRecord{}, false
	}
	for {
		cur, ok := e.win.pop()
		if !ok {
			return core.DatedRecord{}, false
		}
		if e.opts.filter != nil && !e.opts.filter(cur) {
			continue
		}
		d, err := e.duration(cur)
		if err != nil {
			e.err = err
			return core.DatedRecord{}, false
		}
		e.emitted++
		return core.DatedRecord{Record: cur, Duration: d}, true
	}
}

// All adapts the engine to a range-over-func sequence. Check Err after
// the loop.
func (e *Engine) All() iter.Seq[core.DatedRecord] {
	return func(yield func(core.DatedRecord) bool) {
		for {
			rec, ok := e.Next()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}

// Err returns the error that stopped iteration, if any.
func (e *Engine) Err() error { return e.err }

func (e *Engine) duration(cur core.Record) (int, error) {
	if d, ok := cur.TaggedDuration(); ok {
		e.checkOverlap(cur, d)
		return d, nil
	}
	if !cur.IsForeground() {
		return 0, nil
	}
	end, ok, err := e.boundary(cur, cur.Skips())
	if err != nil || !ok {
		return 0, err
	}
	minutes, err := core.Minutes(cur.Seq, end.Seq)
	if err != nil {
		e.warn("cannot compute duration", "seq", string(cur.Seq), "until", string(end.Seq), "error", err)
		return 0, nil
	}
	if minutes < 0 {
		e.warn("entry out of order", "seq", string(cur.Seq), "until", string(end.Seq), "minutes", minutes)
		return 0, nil
	}
	return minutes, nil
}

// boundary finds the record that closes cur's interval: the (skips+1)-th
// foreground record ahead. Background and indented records are passed
// over, at most maxBackground of them; a limit of 0 or less passes over
// any number.
func (e *Engine) boundary(cur core.Record, skips int) (core.Record, bool, error) {
	if skips < 0 {
		panic(core.ErrNegativeSkip)
	}
	limit := e.opts.maxBackground
	found, passed := 0, 0
	for i := 0; ; i++ {
		if !e.win.fill(i + 1) {
			return core.Record{}, false, nil
		}
		next := e.win.at(i)
		if !next.IsForeground() && (limit <= 0 || passed < limit) {
			passed++
			continue
		}
		if found == skips {
			return next, true, nil
		}
		found++
		if err := e.checkSkipped(cur, next); err != nil {
			return core.Record{}, false, err
		}
	}
}

// checkSkipped rejects a skip window that spans a record the filter also
// selects, since both would count the same minutes.
func (e *Engine) checkSkipped(cur, skipped core.Record) error {
	if e.opts.filter == nil || !e.opts.filter(skipped) {
		return nil
	}
	if e.opts.strict {
		return &core.SequenceError{
			Seq:    cur.Seq,
			Header: cur.Header(),
			Reason: fmt.Sprintf("skips over %s", skipped.Seq),
		}
	}
	e.warn("skip window spans a matching entry", "seq", string(cur.Seq), "skipped", string(skipped.Seq))
	return nil
}

// checkOverlap warns when a tagged duration runs past the start of the
// record right after it, background or not.
func (e *Engine) checkOverlap(cur core.Record, d int) {
	if !cur.IsExact() || cur.Skips() != 0 || !e.win.fill(1) {
		return
	}
	next := e.win.at(0)
	if !next.IsExact() {
		return
	}
	gap, err := core.Minutes(cur.Seq, next.Seq)
	if err != nil {
		return
	}
	if overlap := d - gap; overlap > 0 {
		e.warn("tagged duration overlaps next entry",
			"minutes", overlap,
			"entry", cur.Header(),
		)
	}
}

func (e *Engine) warn(msg string, args ...any) {
	e.warnings++
	e.opts.logger.Warn(msg, args...)
}

// EngineState exposes internal state for observability.
type EngineState struct {
	Emitted  int  `json:"emitted"`
	Buffered int  `json:"buffered"`
	Warnings int  `json:"warnings"`
	Strict   bool `json:"strict"`
	Failed   bool `json:"failed"`
}

// State implements introspection.Introspectable.
func (e *Engine) State() any {
	return EngineState{
		Emitted:  e.emitted,
		Buffered: e.win.len(),
		Warnings: e.warnings,
		Strict:   e.opts.strict,
		Failed:   e.err != nil,
	}
}

// ComponentType implements introspection.Component.
func (e *Engine) ComponentType() string {
	return "duration-engine"
}

var _ introspection.Introspectable = (*Engine)(nil)
var _ introspection.Component = (*Engine)(nil)
