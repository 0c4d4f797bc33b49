package journal

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single journal line.
const maxLineSize = 1 << 20

// lineScanner reads lines and can push one back.
type lineScanner struct {
	sc      *bufio.Scanner
	pending string
	pushed  bool
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineScanner{sc: sc}
}

// next returns the next line without its line ending.
func (s *lineScanner) next() (string, bool) {
	if s.pushed {
		s.pushed = false
		return s.pending, true
	}
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(s.sc.Text(), "\r"), true
}

// unread makes line the next one returned.
func (s *lineScanner) unread(line string) {
	s.pending = line
	s.pushed = true
}

func (s *lineScanner) err() error { return s.sc.Err() }
