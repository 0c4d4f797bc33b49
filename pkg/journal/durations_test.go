package journal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vimjournal/pkg/core"
)

func rec(seq core.Seq, tags ...string) core.Record {
	return core.NewRecord(seq, "", tags...)
}

func durationsOf(t *testing.T, records []core.Record, opts ...Option) []int {
	t.Helper()
	dated, err := Durations(FromSlice(records), opts...)
	require.NoError(t, err)
	out := make([]int, 0, len(dated))
	for _, d := range dated {
		out = append(out, d.Duration)
	}
	return out
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestDurations(t *testing.T) {
	tests := []struct {
		name    string
		records []core.Record
		want    []int
	}{
		{"empty", nil, []int{}},
		{"single", []core.Record{rec("20000101_0000")}, []int{0}},
		{"tagged single", []core.Record{rec("20000101_0000", "+15")}, []int{15}},
		{"adjacent", []core.Record{
			rec("20000101_0000"),
			rec("20000101_0015"),
			rec("20000101_0030", "+10"),
		}, []int{15, 15, 10}},
		{"skip one", []core.Record{
			rec("20000102_1030", "&"),
			rec("20000102_1045"),
			rec("20000102_1115"),
		}, []int{45, 30, 0}},
		{"tag beats skip", []core.Record{
			rec("20000102_1030", "+5", "&"),
			rec("20000102_1045"),
			rec("20000102_1115"),
		}, []int{5, 30, 0}},
		{"skip two", []core.Record{
			rec("20000102_1030", "&2"),
			rec("20000102_1045"),
			rec("20000102_1115"),
			rec("20000102_1145"),
		}, []int{75, 30, 30, 0}},
		{"skip past end", []core.Record{
			rec("20000102_1030", "&3"),
			rec("20000102_1045"),
		}, []int{0, 0}},
		{"instant", []core.Record{
			rec("20000102_1030", "/wake!"),
			rec("20000102_1045"),
		}, []int{0, 0}},
		{"same minute", []core.Record{
			rec("20000102_1030"),
			rec("20000102_1030"),
		}, []int{0, 0}},
		{"across midnight", []core.Record{
			rec("20000101_2350"),
			rec("20000102_0010"),
		}, []int{20, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, durationsOf(t, tc.records))
		})
	}
}

func TestDurations_Background(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000101_1000", "write report"),
		core.NewRecord("20000101_1010", "& music on"),
		core.NewRecord("20000101_1020", " still the report"),
		core.NewRecord("20000101_1030", "lunch"),
		core.NewRecord("20000101_1100", "and a nap", "+20"),
		core.NewRecord("20000101_1130", "coding"),
	}
	assert.Equal(t, []int{30, 0, 0, 60, 20, 0}, durationsOf(t, records))
}

func TestDurations_MaxBackground(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000101_1000", "write report"),
		core.NewRecord("20000101_1010", "& music on"),
		core.NewRecord("20000101_1020", "& tea"),
		core.NewRecord("20000101_1030", "lunch"),
	}
	assert.Equal(t, []int{20, 0, 0, 0}, durationsOf(t, records, WithMaxBackground(1)))
}

func TestDurations_UnboundedBackground(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000101_1000", "work"),
		core.NewRecord("20000101_1010", "& music"),
		core.NewRecord("20000101_1020", "& tea"),
		core.NewRecord("20000101_1030", "lunch"),
	}
	for _, n := range []int{0, -1} {
		assert.Equal(t, []int{30, 0, 0, 0}, durationsOf(t, records, WithMaxBackground(n)))
	}
}

func TestDurations_PlaceholderWarns(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		rec("20000101_1000"),
		rec("20000101_XXXX"),
		rec("20000101_1100"),
	}

	assert.Equal(t, []int{0, 0, 0}, durationsOf(t, records, WithLogger(logger)))
	assert.Contains(t, buf.String(), "cannot compute duration")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestDurations_OutOfOrder(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		rec("20000101_1100"),
		rec("20000101_1000"),
	}

	assert.Equal(t, []int{0, 0}, durationsOf(t, records, WithLogger(logger)))
	assert.Contains(t, buf.String(), "entry out of order")
}

func TestDurations_TaggedOverlapWarns(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		rec("20000101_1000", "+45"),
		rec("20000101_1030"),
	}

	assert.Equal(t, []int{45, 0}, durationsOf(t, records, WithLogger(logger)))
	assert.Contains(t, buf.String(), "tagged duration overlaps next entry")
	assert.Contains(t, buf.String(), "minutes=15")
}

func TestDurations_TaggedOverlapsBackground(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		core.NewRecord("20000101_1000", "work", "+20"),
		core.NewRecord("20000101_1010", "& music"),
		core.NewRecord("20000101_1030", "lunch"),
	}

	assert.Equal(t, []int{20, 0, 0}, durationsOf(t, records, WithLogger(logger)))
	assert.Contains(t, buf.String(), "tagged duration overlaps next entry")
	assert.Contains(t, buf.String(), "minutes=10")
}

func TestDurations_TaggedNoOverlap(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		rec("20000101_1000", "+30"),
		rec("20000101_1030"),
		rec("20000101_1100", "+10", "&"),
		rec("20000101_1105"),
	}

	assert.Equal(t, []int{30, 30, 10, 0}, durationsOf(t, records, WithLogger(logger)))
	assert.Empty(t, buf.String())
}

func TestDurations_Filter(t *testing.T) {
	records := []core.Record{
		rec("20000101_0000", "/code"),
		rec("20000101_0015", "/debug"),
		rec("20000101_0030", "/code"),
		rec("20000101_0100", "/cook"),
	}
	dated, err := Durations(FromSlice(records), WithFilter(HasTag("/code")))
	require.NoError(t, err)

	require.Len(t, dated, 2)
	assert.Equal(t, core.Seq("20000101_0000"), dated[0].Seq)
	assert.Equal(t, 15, dated[0].Duration)
	assert.Equal(t, 30, dated[1].Duration)
}

func TestDurations_StrictSkipWindow(t *testing.T) {
	records := []core.Record{
		rec("20000102_1200", "/code", "=p3", "&"),
		rec("20000102_1230", "/search", "=p3"),
		rec("20000102_1300", "/cook"),
	}

	_, err := Durations(FromSlice(records), WithFilter(HasTag("=p3")))
	require.Error(t, err)

	var seqErr *core.SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.ErrorIs(t, err, core.ErrOverlap)
	assert.Equal(t, core.Seq("20000102_1200"), seqErr.Seq)
	assert.Equal(t, "20000102_1200 |> /code =p3 &", seqErr.Header)
}

func TestDurations_LenientSkipWindow(t *testing.T) {
	logger, buf := captureLogger()
	records := []core.Record{
		rec("20000102_1200", "/code", "=p3", "&"),
		rec("20000102_1230", "/search", "=p3"),
		rec("20000102_1300", "/cook"),
	}

	got := durationsOf(t, records, WithFilter(HasTag("=p3")), WithLenient(), WithLogger(logger))
	assert.Equal(t, []int{60, 30}, got)
	assert.Contains(t, buf.String(), "skip window spans a matching entry")
}

func TestDurations_SkipWithoutFilterIsFine(t *testing.T) {
	records := []core.Record{
		rec("20000102_1200", "/code", "=p3", "&"),
		rec("20000102_1230", "/search", "=p3"),
		rec("20000102_1300", "/cook"),
	}
	assert.Equal(t, []int{60, 30, 0}, durationsOf(t, records))
}

func TestEngine_State(t *testing.T) {
	records := []core.Record{
		rec("20000102_1030", "&2"),
		rec("20000102_1045"),
		rec("20000102_1115"),
		rec("20000102_1145"),
	}
	e := NewEngine(FromSlice(records))

	first, ok := e.Next()
	require.True(t, ok)
	assert.Equal(t, 75, first.Duration)

	state, ok := e.State().(EngineState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Emitted)
	assert.Equal(t, 3, state.Buffered)
	assert.True(t, state.Strict)
	assert.Equal(t, "duration-engine", e.ComponentType())
}

func TestEngine_NegativeSkipPanics(t *testing.T) {
	e := NewEngine(FromSlice(nil))
	assert.PanicsWithValue(t, core.ErrNegativeSkip, func() {
		_, _, _ = e.boundary(rec("20000101_0000"), -1)
	})
}
