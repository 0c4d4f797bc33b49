package core

import "strings"

// Fixed offsets of the header line.
const (
	ratingOffset  = SeqLen + 2
	summaryOffset = ratingOffset + 1
)

// IsHeader reports whether line opens a record: a sequence identifier,
// a space, '|', a rating character, then anything.
func IsHeader(line string) bool {
	line = trimEOL(line)
	if len(line) < summaryOffset {
		return false
	}
	if !Seq(line[:SeqLen]).Valid() {
		return false
	}
	return line[SeqLen] == ' ' && line[SeqLen+1] == '|' &&
		strings.IndexByte(Ratings, line[ratingOffset]) >= 0
}

// ParseHeader splits a header line into a body-less Record. The summary
// keeps leading spaces beyond the one after the rating, so indented
// records survive a round trip.
func ParseHeader(line string) (Record, error) {
	line = trimEOL(line)
	if !IsHeader(line) {
		return Record{}, ErrNotHeader
	}
	rest := line[summaryOffset:]
	// without the space after the rating, rest[0] is glued to it
	from := 0
	if rest != "" && rest[0] != ' ' {
		from = 1
	}
	boundary := tagBoundaryFrom(rest, from)
	summary := strings.TrimRight(rest[:boundary], " \t")
	summary = strings.TrimPrefix(summary, " ")
	if strings.TrimSpace(summary) == "" {
		summary = ""
	}
	return Record{
		Seq:     Seq(line[:SeqLen]),
		Rating:  line[ratingOffset : ratingOffset+1],
		Summary: summary,
		Tags:    ParseTags(rest[boundary:]),
	}, nil
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
