// Record is the central entity of the domain.
package core

import (
	"slices"
	"strings"
)

// Ratings lists the accepted rating characters.
const Ratings = "->x=~+*"

// DefaultRating marks an ordinary record.
const DefaultRating = ">"

// Record is one journal entry: a header line and the body below it.
// Records are values; derive changed copies instead of mutating them.
type Record struct {
	Seq     Seq      `json:"seq" yaml:"seq"`
	Rating  string   `json:"rating" yaml:"rating"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Body    string   `json:"body,omitempty" yaml:"body,omitempty"`
}

// DatedRecord is a Record paired with its duration in minutes.
type DatedRecord struct {
	Record   `yaml:",inline"`
	Duration int `json:"duration" yaml:"duration"`
}

// NewRecord builds a record with the default rating.
func NewRecord(seq Seq, summary string, tags ...string) Record {
	return Record{Seq: seq, Rating: DefaultRating, Summary: summary, Tags: tags}
}

// ExactSeq is the placeholder-free sort key of the record.
func (r Record) ExactSeq() Seq { return r.Seq.Exact() }

// IsExact reports whether the record's timestamp is fully known.
func (r Record) IsExact() bool { return r.Seq.IsExact() }

// WithTags returns a copy of r carrying tags.
func (r Record) WithTags(tags []string) Record {
	if len(tags) == 0 {
		r.Tags = nil
		return r
	}
	r.Tags = slices.Clone(tags)
	return r
}

// IsContinuation reports whether the summary is indented. Indented records
// continue the previous interval instead of opening one.
func (r Record) IsContinuation() bool {
	return strings.HasPrefix(r.Summary, " ")
}

// IsBackground reports whether the record runs alongside the previous
// foreground record.
func (r Record) IsBackground() bool {
	return strings.HasPrefix(r.Summary, "& ") || strings.HasPrefix(r.Summary, "and ")
}

// IsForeground reports whether the record opens a timed interval.
func (r Record) IsForeground() bool {
	return !r.IsContinuation() && !r.IsBackground()
}

// HasTag reports whether any tag equals tag or sits below it in the dotted
// hierarchy (tag.sub).
func (r Record) HasTag(tag string) bool {
	return slices.ContainsFunc(r.Tags, func(t string) bool {
		return t == tag || strings.HasPrefix(t, tag+".")
	})
}

// HasMarker reports whether any tag opens with marker.
func (r Record) HasMarker(marker byte) bool {
	return slices.ContainsFunc(r.Tags, func(t string) bool {
		return len(t) > 0 && t[0] == marker
	})
}

// Header renders the header line.
func (r Record) Header() string {
	var b strings.Builder
	b.WriteString(string(r.Seq))
	b.WriteString(" |")
	rating := r.Rating
	if rating == "" {
		rating = DefaultRating
	}
	b.WriteString(rating)
	if strings.TrimSpace(r.Summary) != "" {
		b.WriteByte(' ')
		b.WriteString(r.Summary)
	}
	for _, t := range r.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return b.String()
}

// Format renders the header and, when present, the body framed by a
// blank line and a trailing newline.
func (r Record) Format() string {
	if strings.TrimSpace(r.Body) == "" {
		return r.Header()
	}
	return r.Header() + "\n\n" + r.Body + "\n"
}

func (r Record) String() string { return r.Header() }
