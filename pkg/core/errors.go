package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotHeader    = errors.New("line is not a record header")
	ErrInvalidSeq   = errors.New("invalid sequence identifier")
	ErrNegativeSkip = errors.New("skip count cannot be negative")
	ErrOverlap      = errors.New("entries overlap")
)

// SequenceError reports records whose intervals contradict each other.
// Header holds the rendered header of the offending record.
type SequenceError struct {
	Seq    Seq
	Header string
	Reason string
}

func (e *SequenceError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %s", ErrOverlap, e.Header)
	}
	return fmt.Sprintf("%v (%s): %s", ErrOverlap, e.Reason, e.Header)
}

func (e *SequenceError) Unwrap() error { return ErrOverlap }
