package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/vimjournal/pkg/adapters/fs"
	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// Records reads every record of the journals matching patterns that
// passes filter (nil keeps all).
func (s *Session) Records(patterns []string, filter journal.Filter) ([]core.Record, error) {
	r, err := s.Open(patterns)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	records := journal.Collect(journal.Select(r, filter))
	if err := r.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Dated reads the journals and infers durations. Filters given in extra
// restrict the output, not the inference.
func (s *Session) Dated(patterns []string, extra ...journal.Option) ([]core.DatedRecord, error) {
	r, err := s.Open(patterns)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	dated, err := journal.Durations(r, s.JournalOptions(extra...)...)
	if err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return dated, nil
}

// TagTotals sums durations per tag. A non-empty tag limits the sum to
// records carrying it.
func (s *Session) TagTotals(patterns []string, tag string) (journal.Totals, error) {
	r, err := s.Open(patterns)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var totals journal.Totals
	if tag == "" {
		totals, err = journal.SumDurationsByTag(r, s.JournalOptions()...)
	} else {
		totals, err = journal.SumDurationsByTagFor(r, tag, s.JournalOptions()...)
	}
	if err != nil {
		return nil, err
	}
	return totals, r.Err()
}

// DayTotals sums durations per calendar day.
func (s *Session) DayTotals(patterns []string, filter journal.Filter) (journal.Totals, error) {
	r, err := s.Open(patterns)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var opts []journal.Option
	if filter != nil {
		opts = append(opts, journal.WithFilter(filter))
	}
	totals, err := journal.SumDurationsByDay(r, s.JournalOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	return totals, r.Err()
}

// Strip streams the journals with redundant duration tags removed.
func (s *Session) Strip(patterns []string, fn func(core.Record) error) error {
	r, err := s.Open(patterns)
	if err != nil {
		return err
	}
	defer r.Close()

	for rec := range journal.StripDurationTags(r, s.JournalOptions()...) {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return r.Err()
}

// StripFile rewrites path in place without its redundant duration tags
// and returns how many records changed. Only the affected header lines
// are rewritten; bodies and text before the first header stay as they
// are. The file is left untouched when nothing changes.
func (s *Session) StripFile(path string) (int, error) {
	if path == fs.Stdin {
		return 0, errors.New("cannot rewrite stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read journal: %w", err)
	}
	opts := s.JournalOptions()
	p := journal.NewParser(bytes.NewReader(data), opts...)
	original := journal.Collect(p)
	if err := p.Err(); err != nil {
		return 0, fmt.Errorf("read journal: %w", err)
	}
	stripped := slices.Collect(journal.StripDurationTags(journal.FromSlice(original), opts...))

	lines := strings.SplitAfter(string(data), "\n")
	changed, i := 0, 0
	for n, line := range lines {
		header := strings.TrimRight(line, "\r\n")
		if !core.IsHeader(header) || i >= len(stripped) {
			continue
		}
		if !slices.Equal(stripped[i].Tags, original[i].Tags) {
			lines[n] = stripped[i].Header() + line[len(header):]
			changed++
		}
		i++
	}
	if changed == 0 {
		return 0, nil
	}
	if err := fs.WriteFile(path, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return 0, err
	}
	s.logger.Info("duration tags stripped", "path", path, "records", changed)
	return changed, nil
}

// Export writes the dated records in format.
func (s *Session) Export(patterns []string, format string, w io.Writer, extra ...journal.Option) error {
	ser, err := s.Serializer(format)
	if err != nil {
		return err
	}
	dated, err := s.Dated(patterns, extra...)
	if err != nil {
		return err
	}
	data, err := ser.Serialize(dated)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
