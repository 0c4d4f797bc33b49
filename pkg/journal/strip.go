package journal

import (
	"iter"

	"github.com/aretw0/vimjournal/pkg/core"
)

// Records adapts a RecordIterator to a range-over-func sequence.
func Records(src RecordIterator) iter.Seq[core.Record] {
	return func(yield func(core.Record) bool) {
		for {
			rec, ok := src.Next()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}

// Pairs yields each element with its successor; the last element comes
// with nil.
func Pairs[T any](seq iter.Seq[T]) iter.Seq2[T, *T] {
	return func(yield func(T, *T) bool) {
		var prev T
		have := false
		for v := range seq {
			if have {
				next := v
				if !yield(prev, &next) {
					return
				}
			}
			prev, have = v, true
		}
		if have {
			yield(prev, nil)
		}
	}
}

// StripDurationTags drops +<minutes> tags that the engine would infer
// anyway: the tagged stop time lands within the minimum gap of the next
// record's start. Running it on its own output changes nothing.
func StripDurationTags(src RecordIterator, opts ...Option) iter.Seq[core.Record] {
	o := buildOptions(opts)
	return func(yield func(core.Record) bool) {
		for first, second := range Pairs(Records(src)) {
			if redundantDuration(first, second, o.minGap) {
				first = first.WithoutDurationTags()
			}
			if !yield(first) {
				return
			}
		}
	}
}

func redundantDuration(first core.Record, second *core.Record, minGap int) bool {
	d, ok := first.TaggedDuration()
	if !ok || d <= 0 || second == nil {
		return false
	}
	if !first.IsExact() || !second.IsExact() {
		return false
	}
	if first.IsSkipMarked() || second.IsSkipMarked() {
		return false
	}
	if !first.IsForeground() || !second.IsForeground() {
		return false
	}
	gap, err := core.Minutes(first.Seq, second.Seq)
	if err != nil {
		return false
	}
	diff := gap - d
	if diff < 0 {
		diff = -diff
	}
	return diff <= minGap
}
