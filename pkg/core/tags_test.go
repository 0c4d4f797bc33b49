package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"#foo", []string{"#foo"}},
		{"nontag #foo", []string{"#foo"}},
		{"#foo !bar", []string{"#foo", "!bar"}},
		{"#foo !bar ", []string{"#foo", "!bar"}},
		{" #foo !bar", []string{"#foo", "!bar"}},
		{"#foo   !bar ", []string{"#foo", "!bar"}},
		{"##foo !bar ", []string{"##foo", "!bar"}},
		{"#foo bar !baz", []string{"#foo bar", "!baz"}},
		{"#foo '#bar !baz", []string{"#foo '#bar", "!baz"}},
		{"& #foo !bar", []string{"&", "#foo", "!bar"}},
		{"&  #foo !bar", []string{"&", "#foo", "!bar"}},
		{"&1 #foo !bar", []string{"&1", "#foo", "!bar"}},
		{"#foo & !bar", []string{"#foo", "&", "!bar"}},
		{"#foo & bar", []string{"#foo & bar"}},
		{"#foo & bar !baz", []string{"#foo & bar", "!baz"}},
		{"#foo bar !baz &", []string{"#foo bar", "!baz", "&"}},
		{"#foo bar !baz & ", []string{"#foo bar", "!baz", "&"}},
		{"#foo bar !baz &2", []string{"#foo bar", "!baz", "&2"}},
		{"#foo bar !baz :https://wikipedia.org/foo", []string{"#foo bar", "!baz", ":https://wikipedia.org/foo"}},
		{"#foo bar :https://wikipedia.org/foo !baz", []string{"#foo bar", ":https://wikipedia.org/foo", "!baz"}},
		{"'#tag", nil},
		{"no markers at all", nil},
		{"#> not a tag", nil},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTags(tc.input))
		})
	}
}

func TestTagBoundary(t *testing.T) {
	assert.Equal(t, 0, TagBoundary("#foo"))
	assert.Equal(t, 6, TagBoundary("hello #foo"))
	assert.Equal(t, 5, TagBoundary("hello"))
	assert.Equal(t, 0, TagBoundary(""))
	assert.Equal(t, 18, TagBoundary("hello world '#tag !bar"))
}

func TestParseTags_LongInput(t *testing.T) {
	// pathological input for a backtracking matcher
	input := "#" + strings.Repeat(" ", 50000) + "x"
	assert.Len(t, ParseTags(input), 0)
}
