// Package uniq finds lines that carry new content across journals and
// notes, ignoring timestamps, ratings, tags and attributions.
package uniq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	oldPrefix   = regexp.MustCompile(`^.*│`)
	headerStart = regexp.MustCompile(`^.{13} \|. `)
	trailingTag = regexp.MustCompile(` [/+#=!>@:][^/+#=!>: ].*`)
	attribution = regexp.MustCompile(` --.*$`)
)

// Key reduces a line to the letters that identify its content, lowercased.
// Two lines with the same key are duplicates.
func Key(line string) string {
	line = oldPrefix.ReplaceAllString(line, "")
	line = headerStart.ReplaceAllString(line, "")
	line = trailingTag.ReplaceAllString(line, "")
	line = attribution.ReplaceAllString(line, "")

	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		}
	}
	return b.String()
}

// Set remembers the keys of lines already seen.
type Set struct {
	seen map[string]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records line and reports whether its key was new. Lines without
// letters are never new.
func (s *Set) Add(line string) bool {
	key := Key(line)
	if key == "" {
		return false
	}
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains reports whether a line with the same key was seen.
func (s *Set) Contains(line string) bool {
	key := Key(line)
	if key == "" {
		return false
	}
	_, ok := s.seen[key]
	return ok
}

// Len returns the number of distinct keys.
func (s *Set) Len() int { return len(s.seen) }

// Load adds every line of r.
func (s *Set) Load(r io.Reader) error {
	return eachLine(r, func(line string) error {
		s.Add(line)
		return nil
	})
}

// LoadFile adds every line of the file at path.
func (s *Set) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seen file: %w", err)
	}
	defer f.Close()
	if err := s.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Unique copies the lines of r not seen before to w, each prefixed with
// the base name of name and a tab, after a banner naming the source.
// It returns the number of lines written.
func (s *Set) Unique(name string, r io.Reader, w io.Writer) (int, error) {
	base := filepath.Base(name)
	if _, err := fmt.Fprintf(w, "\n======= %s\n\n", name); err != nil {
		return 0, err
	}
	n := 0
	err := eachLine(r, func(line string) error {
		if !s.Add(line) {
			return nil
		}
		n++
		_, err := fmt.Fprintf(w, "%s:\t %s\n", base, line)
		return err
	})
	return n, err
}

// Duplicates copies the lines of r already seen to w, unprefixed.
func (s *Set) Duplicates(name string, r io.Reader, w io.Writer) (int, error) {
	if _, err := fmt.Fprintf(w, "\n======= %s\n\n", name); err != nil {
		return 0, err
	}
	n := 0
	err := eachLine(r, func(line string) error {
		if !s.Contains(line) {
			return nil
		}
		n++
		_, err := fmt.Fprintln(w, line)
		return err
	})
	return n, err
}

// SplitArgs separates "files - seen..." command arguments. Without a "-"
// every argument is an input and nothing is preloaded.
func SplitArgs(args []string) (inputs, seen []string) {
	for i, a := range args {
		if a == "-" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := fn(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	return sc.Err()
}
