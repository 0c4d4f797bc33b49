package core

import (
	"slices"
	"strconv"
	"strings"
)

// IsDurationTag reports whether tag is an explicit duration, +<minutes>.
func IsDurationTag(tag string) bool {
	return len(tag) > 1 && tag[0] == '+' && allDigits(tag[1:])
}

// IsInstantTag reports whether tag marks a zero-length activity, /<name>!.
func IsInstantTag(tag string) bool {
	return len(tag) > 1 && tag[0] == '/' && strings.HasSuffix(tag, "!")
}

// IsSkipTag reports whether tag is a skip count, & or &<n>.
func IsSkipTag(tag string) bool {
	return len(tag) > 0 && tag[0] == '&' && allDigits(tag[1:])
}

// TaggedDuration returns the duration stated by the last duration or
// instant tag, and false when the record states none.
func (r Record) TaggedDuration() (int, bool) {
	i := slices.IndexFunc(reversed(r.Tags), func(t string) bool {
		return IsDurationTag(t) || IsInstantTag(t)
	})
	if i < 0 {
		return 0, false
	}
	tag := r.Tags[len(r.Tags)-1-i]
	if IsInstantTag(tag) {
		return 0, true
	}
	n, err := strconv.Atoi(tag[1:])
	if err != nil {
		// digits that overflow int: treat as no usable duration
		return 0, false
	}
	return n, true
}

// Skips returns how many following records the record's interval spans.
// The last skip tag wins; a bare & counts one.
func (r Record) Skips() int {
	for _, tag := range reversed(r.Tags) {
		if !IsSkipTag(tag) {
			continue
		}
		if len(tag) == 1 {
			return 1
		}
		n, err := strconv.Atoi(tag[1:])
		if err != nil {
			return 1
		}
		return n
	}
	return 0
}

// IsSkipMarked reports whether any tag opens with the skip marker.
func (r Record) IsSkipMarked() bool { return r.HasMarker('&') }

// WithoutDurationTags returns a copy of r without +<minutes> tags.
func (r Record) WithoutDurationTags() Record {
	return r.WithTags(slices.DeleteFunc(slices.Clone(r.Tags), IsDurationTag))
}

func reversed(tags []string) []string {
	out := slices.Clone(tags)
	slices.Reverse(out)
	return out
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
