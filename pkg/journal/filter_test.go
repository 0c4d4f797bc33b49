package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vimjournal/pkg/core"
)

func TestFilters(t *testing.T) {
	r := core.Record{Seq: "20000101_1000", Rating: "+", Summary: "fix the parser", Tags: []string{"/code", "=vim.journal"}}

	assert.True(t, After("20000101_0959")(r))
	assert.False(t, After("20000101_1000")(r))
	assert.True(t, After("20000101_XXXX")(r))
	assert.True(t, RatingIn("+*")(r))
	assert.False(t, RatingIn("x")(r))
	assert.True(t, SummaryContains("parser")(r))
	assert.False(t, SummaryContains("lexer")(r))
	assert.True(t, HasTag("=vim")(r))
	assert.True(t, HasMarker('/')(r))
	assert.True(t, AllOf(HasTag("/code"), nil, RatingIn("+"))(r))
	assert.False(t, AllOf(HasTag("/code"), RatingIn("x"))(r))
}

func TestTagMatches(t *testing.T) {
	r := core.NewRecord("20000101_1000", "", "/code.go", "=vim.journal")

	f, err := TagMatches("=vim*")
	require.NoError(t, err)
	assert.True(t, f(r))

	f, err = TagMatches("/code.{go,rs}")
	require.NoError(t, err)
	assert.True(t, f(r))

	f, err = TagMatches("#*")
	require.NoError(t, err)
	assert.False(t, f(r))

	_, err = TagMatches("[")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000101_1000", "a", "/code"),
		core.NewRecord("20000101_1010", "b", "/cook"),
		core.NewRecord("20000101_1020", "c", "/code"),
	}
	got := Collect(Select(FromSlice(records), HasTag("/code")))
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[1].Summary)
}

func TestSortBySeq(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000102_1000", "late"),
		core.NewRecord("20000101_XXXX", "approximate"),
		core.NewRecord("20000101_0900", "early"),
		core.NewRecord("20000101_1000", "mid"),
	}
	SortBySeq(records)

	var got []string
	for _, r := range records {
		got = append(got, r.Summary)
	}
	assert.Equal(t, []string{"approximate", "early", "mid", "late"}, got)
}

func TestSortBySummary(t *testing.T) {
	records := []core.Record{
		core.NewRecord("20000101_0003", "b"),
		core.NewRecord("20000101_0001", "a"),
		core.NewRecord("20000101_0002", "b"),
	}
	SortBySummary(records)
	assert.Equal(t, []core.Seq{"20000101_0001", "20000101_0003", "20000101_0002"},
		[]core.Seq{records[0].Seq, records[1].Seq, records[2].Seq})
}
