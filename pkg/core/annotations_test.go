package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaggedDuration(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		want   int
		wantOK bool
	}{
		{"none", nil, 0, false},
		{"zero", []string{"+0"}, 0, true},
		{"word", []string{"+word"}, 0, false},
		{"minutes", []string{"/code", "+15"}, 15, true},
		{"last wins", []string{"/code", "+15", "+30"}, 30, true},
		{"instant", []string{"/code!"}, 0, true},
		{"instant after minutes", []string{"+15", "/code!"}, 0, true},
		{"minutes after instant", []string{"/code!", "+15"}, 15, true},
		{"bang on other marker", []string{"#code!"}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NewRecord("XXXXXXXX_XXXX", "", tc.tags...).TaggedDuration()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSkips(t *testing.T) {
	tests := []struct {
		tags []string
		want int
	}{
		{nil, 0},
		{[]string{"&"}, 1},
		{[]string{"&", "#foo"}, 1},
		{[]string{"&1", "#foo"}, 1},
		{[]string{"#foo", "&"}, 1},
		{[]string{"#foo", "&2"}, 2},
		{[]string{"&2", "#foo"}, 2},
		{[]string{"&2", "#foo", "&3"}, 3},
		{[]string{"&word"}, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NewRecord("XXXXXXXX_XXXX", "", tc.tags...).Skips(), "tags %v", tc.tags)
	}
}

func TestWithoutDurationTags(t *testing.T) {
	rec := NewRecord("20000101_0000", "work", "/code", "+10", "=p1", "+5")
	stripped := rec.WithoutDurationTags()

	assert.Equal(t, []string{"/code", "=p1"}, stripped.Tags)
	assert.Equal(t, []string{"/code", "+10", "=p1", "+5"}, rec.Tags, "original must not change")
	assert.Nil(t, NewRecord("20000101_0000", "", "+10").WithoutDurationTags().Tags)
}
