package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// Serializer defines how to read and write a specific format.
type Serializer interface {
	// Parse reads records (with their durations) from r.
	Parse(r io.Reader) ([]core.DatedRecord, error)
	// Serialize converts records to bytes.
	Serialize(records []core.DatedRecord) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by
// format name. Strict serializers reject unknown fields.
func DefaultSerializers(strict bool, opts ...journal.Option) map[string]Serializer {
	return map[string]Serializer{
		"journal": NewJournalSerializer(opts...),
		"json":    NewJSONSerializer(strict),
		"yaml":    NewYAMLSerializer(strict),
		"csv":     NewCSVSerializer(strict),
	}
}

// SerializerFor picks a serializer by format name or file extension.
func SerializerFor(format string, strict bool, opts ...journal.Option) (Serializer, error) {
	name := strings.ToLower(strings.TrimPrefix(format, "."))
	switch name {
	case "yml":
		name = "yaml"
	case "txt", "vimjournal":
		name = "journal"
	}
	s, ok := DefaultSerializers(strict, opts...)[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return s, nil
}

// --- Journal Serializer ---

// JournalSerializer reads and writes the native header format. Durations
// are not part of the text, so Parse infers them.
type JournalSerializer struct {
	opts []journal.Option
}

// NewJournalSerializer creates a journal serializer; opts configure the
// duration inference used by Parse.
func NewJournalSerializer(opts ...journal.Option) *JournalSerializer {
	return &JournalSerializer{opts: opts}
}

func (s *JournalSerializer) Parse(r io.Reader) ([]core.DatedRecord, error) {
	p := journal.NewParser(r, s.opts...)
	records, err := journal.Durations(p, s.opts...)
	if err != nil {
		return nil, err
	}
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return records, nil
}

func (s *JournalSerializer) Serialize(records []core.DatedRecord) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range records {
		text := r.Format()
		buf.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON arrays of records.
type JSONSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Parse(r io.Reader) ([]core.DatedRecord, error) {
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}
	var records []core.DatedRecord
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return records, validate(records)
}

func (s *JSONSerializer) Serialize(records []core.DatedRecord) ([]byte, error) {
	if records == nil {
		records = []core.DatedRecord{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// --- YAML Serializer ---

type YAMLSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Parse(r io.Reader) ([]core.DatedRecord, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)
	var records []core.DatedRecord
	if err := decoder.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return records, validate(records)
}

func (s *YAMLSerializer) Serialize(records []core.DatedRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if records == nil {
		records = []core.DatedRecord{}
	}
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

var csvHeader = []string{"seq", "rating", "summary", "tags", "duration", "body"}

type CSVSerializer struct {
	// Strict requires the exact column set.
	Strict bool
}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer(strict bool) *CSVSerializer {
	return &CSVSerializer{Strict: strict}
}

func (s *CSVSerializer) Parse(r io.Reader) ([]core.DatedRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["seq"]; !ok {
		return nil, errors.New("csv has no seq column")
	}
	if s.Strict && len(headers) != len(csvHeader) {
		return nil, fmt.Errorf("csv columns %v, want %v", headers, csvHeader)
	}

	var records []core.DatedRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if len(row) != len(headers) {
			return nil, fmt.Errorf("csv row length mismatch")
		}
		get := func(name string) string {
			if i, ok := cols[name]; ok {
				return row[i]
			}
			return ""
		}
		rec := core.DatedRecord{Record: core.Record{
			Seq:     core.Seq(strings.TrimSpace(get("seq"))),
			Rating:  get("rating"),
			Summary: get("summary"),
			Body:    get("body"),
		}}
		if tags, ok := UnmarshalCSVValue(get("tags")).([]any); ok {
			for _, t := range tags {
				rec.Tags = append(rec.Tags, fmt.Sprint(t))
			}
		}
		if d := strings.TrimSpace(get("duration")); d != "" {
			if rec.Duration, err = strconv.Atoi(d); err != nil {
				return nil, fmt.Errorf("invalid duration %q: %w", d, err)
			}
		}
		records = append(records, rec)
	}
	return records, validate(records)
}

func (s *CSVSerializer) Serialize(records []core.DatedRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		tags := ""
		if len(r.Tags) > 0 {
			tags = MarshalCSVValue(r.Tags)
		}
		row := []string{string(r.Seq), r.Rating, r.Summary, tags, strconv.Itoa(r.Duration), r.Body}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// --- Helpers ---

// UnmarshalCSVValue attempts to parse a string as JSON if it looks like a
// Map or Slice. Otherwise returns the string as is.
func UnmarshalCSVValue(val string) any {
	valTrimmed := strings.TrimSpace(val)
	if (strings.HasPrefix(valTrimmed, "{") && strings.HasSuffix(valTrimmed, "}")) ||
		(strings.HasPrefix(valTrimmed, "[") && strings.HasSuffix(valTrimmed, "]")) {
		var parsed any
		if err := json.Unmarshal([]byte(valTrimmed), &parsed); err == nil {
			return parsed
		}
	}
	return val
}

// MarshalCSVValue converts a value to a string, using JSON for complex
// types (Map, Slice).
func MarshalCSVValue(v any) string {
	switch v.(type) {
	case map[string]any, []any, map[string]string, []string:
		b, err := json.Marshal(v)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}

func validate(records []core.DatedRecord) error {
	for i, r := range records {
		if !r.Seq.Valid() {
			return fmt.Errorf("record %d: %w: %q", i, core.ErrInvalidSeq, string(r.Seq))
		}
		if r.Rating == "" {
			records[i].Rating = core.DefaultRating
		}
	}
	return nil
}
