package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"00000000_0000 |>", true},
		{"0000XXXX_XXXX |>", true},
		{"0000XXXX_YYYY |>", true},
		{"20210120_2210 |>", true},
		{"20210120_2210 |*", true},
		{"20210120_2210 |> ", true},
		{"20210120_2210 |> hello world", true},
		{"20210120_2210 |> hello world\n", true},
		{"20210120_2210 |> hello world\r\n", true},
		{"20210120_2210 |> hello world #truth", true},
		{"20210120_2210|> hello world", false},
		{"20210120_2210   hello world", false},
		{"202101202210  |> hello world", false},
		{"202101_202210 |> hello world", false},
		{"20210120_2210 |? unknown rating", false},
		{"foo", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, IsHeader(tc.line))
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		line    string
		summary string
		rating  string
		tags    []string
	}{
		{"XXXXXXXX_XXXX |>", "", ">", nil},
		{"XXXXXXXX_XXXX |+", "", "+", nil},
		{"XXXXXXXX_XXXX |> hello world", "hello world", ">", nil},
		{"XXXXXXXX_XXXX |> hello world ", "hello world", ">", nil},
		{"XXXXXXXX_XXXX |> hello world!", "hello world!", ">", nil},
		{"XXXXXXXX_XXXX |> hello world #tag !bar", "hello world", ">", []string{"#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> hello world  #tag !bar", "hello world", ">", []string{"#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> hello world #tag '!bar", "hello world", ">", []string{"#tag '!bar"}},
		{"XXXXXXXX_XXXX |> hello world '#tag !bar", "hello world '#tag", ">", []string{"!bar"}},
		{"XXXXXXXX_XXXX |> hello world '#tag' !bar", "hello world '#tag'", ">", []string{"!bar"}},
		{"XXXXXXXX_XXXX |> hello world &", "hello world", ">", []string{"&"}},
		{"XXXXXXXX_XXXX |> hello world & #tag !bar", "hello world", ">", []string{"&", "#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> hello world &1 #tag !bar", "hello world", ">", []string{"&1", "#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> hello world & '#tag !bar", "hello world & '#tag", ">", []string{"!bar"}},
		{"XXXXXXXX_XXXX |> hello world #tag !bar &", "hello world", ">", []string{"#tag", "!bar", "&"}},
		{"XXXXXXXX_XXXX |> hello world #tag !bar &1", "hello world", ">", []string{"#tag", "!bar", "&1"}},
		{"XXXXXXXX_XXXX |> hello & world", "hello & world", ">", nil},
		{"XXXXXXXX_XXXX |> hello & world #tag !bar", "hello & world", ">", []string{"#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> 🩢🩣🩤 #tag !bar", "🩢🩣🩤", ">", []string{"#tag", "!bar"}},
		{"XXXXXXXX_XXXX |> #foo !bar", "", ">", []string{"#foo", "!bar"}},
		{"XXXXXXXX_XXXX |>   indented #foo", "  indented", ">", []string{"#foo"}},
		{"XXXXXXXX_XXXX |x failed attempt", "failed attempt", "x", nil},
		{"XXXXXXXX_XXXX |>#foo", "#foo", ">", nil},
		{"XXXXXXXX_XXXX |>#foo !bar", "#foo", ">", []string{"!bar"}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			rec, err := ParseHeader(tc.line)
			require.NoError(t, err)
			assert.Equal(t, Seq("XXXXXXXX_XXXX"), rec.Seq)
			assert.Equal(t, tc.summary, rec.Summary)
			assert.Equal(t, tc.rating, rec.Rating)
			assert.Equal(t, tc.tags, rec.Tags)
			assert.Empty(t, rec.Body)
		})
	}
}

func TestParseHeader_NotHeader(t *testing.T) {
	_, err := ParseHeader("just some body text")
	assert.ErrorIs(t, err, ErrNotHeader)
}

func TestParseHeader_RoundTrip(t *testing.T) {
	lines := []string{
		"20210120_2210 |> hello world #truth",
		"20210120_2210 |+ ",
		"2021XXXX_XXXX |* hello '#quoted !bar &2",
		"20210120_2210 |~  indented continuation /code",
		"20210120_2210 |= & background task +15",
		"20210120_2210 |- #only :tags",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first, err := ParseHeader(line)
			require.NoError(t, err)
			second, err := ParseHeader(first.Header())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
