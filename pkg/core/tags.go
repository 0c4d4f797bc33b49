package core

import "strings"

// TagMarkers lists the characters that may open a tag.
const TagMarkers = "/+#=!>@:&"

const (
	charSpace uint8 = 1 << iota
	charMarker
	// charNoFollow may not directly follow a marker that opens a tag.
	charNoFollow
)

var charTable = func() (t [256]uint8) {
	t[' '] |= charSpace | charNoFollow
	for i := 0; i < len(TagMarkers); i++ {
		t[TagMarkers[i]] |= charMarker
	}
	t['|'] |= charNoFollow
	t['>'] |= charNoFollow
	return t
}()

func is(c byte, class uint8) bool { return charTable[c]&class != 0 }

// IsTagMarker reports whether c may open a tag.
func IsTagMarker(c byte) bool { return is(c, charMarker) }

// lexer states while looking past a candidate marker.
const (
	afterMarker = iota
	inSpaces
)

// tagStartAt reports whether a tag opens at text[i]. A marker opens a tag
// when it begins the text or follows a space, and is followed by a
// character that is not a space, '|' or '>', by spaces and then another
// marker, or by nothing but spaces up to the end.
func tagStartAt(text string, i int) bool {
	if !is(text[i], charMarker) || (i > 0 && !is(text[i-1], charSpace)) {
		return false
	}
	state := afterMarker
	for j := i + 1; j < len(text); j++ {
		c := text[j]
		switch state {
		case afterMarker:
			if !is(c, charNoFollow) {
				return true
			}
			if !is(c, charSpace) {
				return false
			}
			state = inSpaces
		case inSpaces:
			if is(c, charSpace) {
				continue
			}
			return is(c, charMarker)
		}
	}
	return true
}

func tagStarts(text string) []int {
	var starts []int
	for i := 0; i < len(text); i++ {
		if tagStartAt(text, i) {
			starts = append(starts, i)
		}
	}
	return starts
}

// TagBoundary returns the index of the first tag in text, or len(text).
func TagBoundary(text string) int {
	return tagBoundaryFrom(text, 0)
}

// tagBoundaryFrom is TagBoundary ignoring tags that open before from.
func tagBoundaryFrom(text string, from int) int {
	for i := from; i < len(text); i++ {
		if tagStartAt(text, i) {
			return i
		}
	}
	return len(text)
}

// ParseTags splits text into its ordered tag tokens. Each token runs from
// its marker up to the next tag, so tag bodies may hold several words.
// Text without markers yields no tags.
func ParseTags(text string) []string {
	starts := tagStarts(text)
	if len(starts) == 0 {
		return nil
	}
	tags := make([]string, 0, len(starts))
	for n, start := range starts {
		stop := len(text)
		if n+1 < len(starts) {
			stop = starts[n+1]
		}
		tags = append(tags, strings.TrimSpace(text[start:stop]))
	}
	return tags
}
