package journal

import "github.com/aretw0/vimjournal/pkg/core"

// window is a FIFO lookahead over a RecordIterator, kept in a ring buffer
// so records read ahead are still handed out in order.
type window struct {
	src  RecordIterator
	buf  []core.Record
	head int
	size int
	eof  bool
}

func newWindow(src RecordIterator) *window {
	return &window{src: src, buf: make([]core.Record, 8)}
}

// fill reads ahead until n records are buffered. It reports false when the
// source ends first.
func (w *window) fill(n int) bool {
	for w.size < n {
		if w.eof {
			return false
		}
		rec, ok := w.src.Next()
		if !ok {
			w.eof = true
			return false
		}
		w.push(rec)
	}
	return true
}

// at returns the i-th buffered record; i must be below len.
func (w *window) at(i int) core.Record {
	return w.buf[(w.head+i)&(len(w.buf)-1)]
}

func (w *window) len() int { return w.size }

// pop returns the oldest buffered record, reading one if the buffer is empty.
func (w *window) pop() (core.Record, bool) {
	if !w.fill(1) {
		return core.Record{}, false
	}
	rec := w.buf[w.head]
	w.buf[w.head] = core.Record{}
	w.head = (w.head + 1) & (len(w.buf) - 1)
	w.size--
	return rec, true
}

func (w *window) push(rec core.Record) {
	if w.size == len(w.buf) {
		w.grow()
	}
	w.buf[(w.head+w.size)&(len(w.buf)-1)] = rec
	w.size++
}

// grow doubles the capacity, keeping it a power of two.
func (w *window) grow() {
	buf := make([]core.Record, len(w.buf)*2)
	for i := 0; i < w.size; i++ {
		buf[i] = w.at(i)
	}
	w.buf = buf
	w.head = 0
}

// sliceIterator iterates over an in-memory slice.
type sliceIterator struct {
	records []core.Record
	pos     int
}

// FromSlice returns a RecordIterator over records.
func FromSlice(records []core.Record) RecordIterator {
	return &sliceIterator{records: records}
}

func (s *sliceIterator) Next() (core.Record, bool) {
	if s.pos >= len(s.records) {
		return core.Record{}, false
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, true
}
