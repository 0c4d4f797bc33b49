package journal

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/vimjournal/pkg/core"
)

// HasTag selects records carrying tag or one of its dotted subtags.
func HasTag(tag string) Filter {
	return func(r core.Record) bool { return r.HasTag(tag) }
}

// HasMarker selects records with a tag opening with marker.
func HasMarker(marker byte) Filter {
	return func(r core.Record) bool { return r.HasMarker(marker) }
}

// After selects records strictly later than seq. Placeholders on either
// side read as zeros.
func After(seq core.Seq) Filter {
	key := seq.Exact()
	return func(r core.Record) bool { return r.ExactSeq() > key }
}

// RatingIn selects records whose rating is one of the characters of ratings.
func RatingIn(ratings string) Filter {
	return func(r core.Record) bool {
		return r.Rating != "" && strings.Contains(ratings, r.Rating)
	}
}

// SummaryContains selects records whose summary contains s.
func SummaryContains(s string) Filter {
	return func(r core.Record) bool { return strings.Contains(r.Summary, s) }
}

// TagMatches selects records with a tag matching the glob pattern.
func TagMatches(pattern string) (Filter, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return func(r core.Record) bool {
		for _, tag := range r.Tags {
			if ok, _ := doublestar.Match(pattern, tag); ok {
				return true
			}
		}
		return false
	}, nil
}

// AllOf combines filters; a nil filter selects everything.
func AllOf(filters ...Filter) Filter {
	return func(r core.Record) bool {
		for _, f := range filters {
			if f != nil && !f(r) {
				return false
			}
		}
		return true
	}
}

// Select yields the records of src passing f.
func Select(src RecordIterator, f Filter) RecordIterator {
	return &selectIterator{src: src, f: f}
}

type selectIterator struct {
	src RecordIterator
	f   Filter
}

func (s *selectIterator) Next() (core.Record, bool) {
	for {
		rec, ok := s.src.Next()
		if !ok {
			return core.Record{}, false
		}
		if s.f == nil || s.f(rec) {
			return rec, true
		}
	}
}

// Collect drains src into a slice.
func Collect(src RecordIterator) []core.Record {
	var out []core.Record
	for {
		rec, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}
