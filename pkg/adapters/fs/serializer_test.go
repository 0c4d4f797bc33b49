package fs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vimjournal/pkg/core"
)

func sampleRecords() []core.DatedRecord {
	return []core.DatedRecord{
		{Record: core.Record{Seq: "20000101_0900", Rating: ">", Summary: "write report", Tags: []string{"/work", "+30"}}, Duration: 30},
		{Record: core.Record{Seq: "20000101_0930", Rating: "*", Summary: "lunch", Body: "soup\n\nbread"}, Duration: 45},
		{Record: core.Record{Seq: "20000101_XXXX", Rating: "-", Summary: " more, \"quoted\""}, Duration: 0},
	}
}

func TestSerializers_RoundTrip(t *testing.T) {
	serializers := DefaultSerializers(true)

	for _, name := range []string{"json", "yaml", "csv"} {
		t.Run(name, func(t *testing.T) {
			s := serializers[name]
			data, err := s.Serialize(sampleRecords())
			require.NoError(t, err)

			parsed, err := s.Parse(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), parsed)
		})
	}
}

func TestJournalSerializer(t *testing.T) {
	s := NewJournalSerializer()
	data, err := s.Serialize(sampleRecords()[:2])
	require.NoError(t, err)

	want := "20000101_0900 |> write report /work +30\n" +
		"20000101_0930 |* lunch\n\nsoup\n\nbread\n"
	assert.Equal(t, want, string(data))

	parsed, err := s.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, 30, parsed[0].Duration)
	assert.Equal(t, "soup\n\nbread", parsed[1].Body)
}

func TestSerializers_Strict(t *testing.T) {
	tests := []struct {
		format string
		input  string
	}{
		{"json", `[{"seq":"20000101_0900","rating":">","summary":"x","mood":"good"}]`},
		{"yaml", "- seq: 20000101_0900\n  summary: x\n  mood: good\n"},
		{"csv", "seq,summary,mood\n20000101_0900,x,good\n"},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			strict, err := SerializerFor(tc.format, true)
			require.NoError(t, err)
			_, err = strict.Parse(strings.NewReader(tc.input))
			assert.Error(t, err)

			lenient, err := SerializerFor(tc.format, false)
			require.NoError(t, err)
			records, err := lenient.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, core.DefaultRating, records[0].Rating)
		})
	}
}

func TestSerializers_RejectBadSeq(t *testing.T) {
	s := NewJSONSerializer(false)
	_, err := s.Parse(strings.NewReader(`[{"seq":"yesterday","summary":"x"}]`))
	assert.ErrorIs(t, err, core.ErrInvalidSeq)
}

func TestSerializerFor(t *testing.T) {
	for _, format := range []string{"json", ".yml", "YAML", "csv", ".txt", "journal"} {
		_, err := SerializerFor(format, false)
		assert.NoError(t, err, format)
	}
	_, err := SerializerFor("xml", false)
	assert.Error(t, err)
}

func TestCSVValues(t *testing.T) {
	assert.Equal(t, `["/a","+5"]`, MarshalCSVValue([]string{"/a", "+5"}))
	assert.Equal(t, "plain", MarshalCSVValue("plain"))
	assert.Equal(t, []any{"/a", "+5"}, UnmarshalCSVValue(`["/a","+5"]`))
	assert.Equal(t, "[broken", UnmarshalCSVValue("[broken"))
}
