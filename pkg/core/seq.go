package core

import (
	"fmt"
	"time"
)

// SeqLen is the fixed width of a sequence identifier.
const SeqLen = 13

// ZeroSeq supplies the characters substituted for placeholders by Exact.
const ZeroSeq Seq = "00000000_0000"

// SeqLayout is the time layout of an exact sequence identifier.
const SeqLayout = "20060102_1504"

// Seq identifies a record in time using the form YYYYMMDD_HHmm.
// Any position may hold an uppercase placeholder letter (usually X)
// meaning the digit there is unknown.
type Seq string

// Valid reports whether s has the shape of a sequence identifier.
func (s Seq) Valid() bool {
	if len(s) != SeqLen || s[8] != '_' {
		return false
	}
	for i := 0; i < SeqLen; i++ {
		if !isSeqChar(s[i]) {
			return false
		}
	}
	return true
}

// IsExact reports whether every date and time position is a digit.
func (s Seq) IsExact() bool {
	if len(s) != SeqLen || s[8] != '_' {
		return false
	}
	for i := 0; i < SeqLen; i++ {
		if i != 8 && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Exact replaces each placeholder with the matching character of ZeroSeq,
// giving a key that orders approximate identifiers before exact ones on
// the same known prefix.
func (s Seq) Exact() Seq {
	return s.ExactFrom(ZeroSeq)
}

// ExactFrom replaces each placeholder with the matching character of base.
func (s Seq) ExactFrom(base Seq) Seq {
	if len(s) != SeqLen || len(base) != SeqLen {
		return s
	}
	b := []byte(s)
	for i := range b {
		if isPlaceholder(b[i]) {
			b[i] = base[i]
		}
	}
	return Seq(b)
}

// Date returns the YYYYMMDD part.
func (s Seq) Date() string {
	if len(s) < 8 {
		return string(s)
	}
	return string(s[:8])
}

// Time parses an exact identifier as a local wall-clock time.
func (s Seq) Time() (time.Time, error) {
	if !s.IsExact() {
		return time.Time{}, fmt.Errorf("%w: %q is not exact", ErrInvalidSeq, string(s))
	}
	t, err := time.Parse(SeqLayout, string(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSeq, err)
	}
	return t, nil
}

// Compare orders a and b character by character. The first position where
// either side holds a placeholder ends the comparison as equal, so
// approximate identifiers tie with anything sharing their known prefix.
// The result is not a strict total order; sort with a stable algorithm.
func Compare(a, b Seq) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := a[i], b[i]
		if isPlaceholder(ca) || isPlaceholder(cb) {
			return 0
		}
		if ca < cb {
			return -1
		}
		if ca > cb {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Minutes returns the whole minutes from a to b. Both must be exact.
func Minutes(a, b Seq) (int, error) {
	ta, err := a.Time()
	if err != nil {
		return 0, err
	}
	tb, err := b.Time()
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta) / time.Minute), nil
}

func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isPlaceholder(c byte) bool { return c >= 'A' && c <= 'Z' }
func isSeqChar(c byte) bool     { return isDigit(c) || isPlaceholder(c) || c == '_' }
