package journal

import (
	"cmp"
	"maps"
	"slices"

	"github.com/aretw0/vimjournal/pkg/core"
)

// Totals maps a key (a tag or a date) to minutes.
type Totals map[string]int

// Total is one entry of Totals.
type Total struct {
	Key     string `json:"key" yaml:"key"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// Hours converts the minutes to fractional hours.
func (t Total) Hours() float64 { return float64(t.Minutes) / 60 }

// Sorted returns the entries ordered by key.
func (t Totals) Sorted() []Total {
	out := make([]Total, 0, len(t))
	for _, k := range slices.Sorted(maps.Keys(t)) {
		out = append(out, Total{Key: k, Minutes: t[k]})
	}
	return out
}

// ByMinutes returns the entries ordered by descending minutes, then key.
func (t Totals) ByMinutes() []Total {
	out := t.Sorted()
	slices.SortStableFunc(out, func(a, b Total) int {
		return cmp.Compare(b.Minutes, a.Minutes)
	})
	return out
}

// SumDurations returns the total minutes of the records passing the filter.
func SumDurations(src RecordIterator, opts ...Option) (int, error) {
	total := 0
	err := each(src, opts, func(rec core.DatedRecord) {
		total += rec.Duration
	})
	return total, err
}

// SumDurationsByTag adds each record's duration to every one of its tags.
// Duration tags (+<minutes>) are magnitudes, not categories, and are left
// out.
func SumDurationsByTag(src RecordIterator, opts ...Option) (Totals, error) {
	totals := Totals{}
	err := each(src, opts, func(rec core.DatedRecord) {
		for _, tag := range rec.Tags {
			if core.IsDurationTag(tag) {
				continue
			}
			totals[tag] += rec.Duration
		}
	})
	return totals, err
}

// SumDurationsByTagFor restricts SumDurationsByTag to records carrying tag
// or one of its dotted subtags.
func SumDurationsByTagFor(src RecordIterator, tag string, opts ...Option) (Totals, error) {
	return SumDurationsByTag(src, slices.Concat(opts, []Option{WithFilter(HasTag(tag))})...)
}

// SumDurationsByMarker restricts SumDurationsByTag to records carrying a
// tag that opens with marker.
func SumDurationsByMarker(src RecordIterator, marker byte, opts ...Option) (Totals, error) {
	return SumDurationsByTag(src, slices.Concat(opts, []Option{WithFilter(HasMarker(marker))})...)
}

// SumDurationsByDay totals minutes per calendar day (YYYYMMDD).
func SumDurationsByDay(src RecordIterator, opts ...Option) (Totals, error) {
	totals := Totals{}
	err := each(src, opts, func(rec core.DatedRecord) {
		totals[rec.Seq.Date()] += rec.Duration
	})
	return totals, err
}

func each(src RecordIterator, opts []Option, fn func(core.DatedRecord)) error {
	e := NewEngine(src, opts...)
	for rec := range e.All() {
		fn(rec)
	}
	return e.Err()
}
