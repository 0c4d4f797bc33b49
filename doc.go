// Package vimjournal reads plain-text time journals and answers where the
// time went.
//
// A journal is a text file of records. Each record opens with a header
//
//	20240105_0930 |> write the report /work =p1
//
// made of a timestamp (digits may be replaced by placeholders when only
// approximately known), a rating, a summary and tags, followed by an
// optional free-form body. A record lasts until the next one starts,
// unless a "+minutes" tag says otherwise or an "&" tag skips entries
// that happened meanwhile.
//
// Features:
//
//   - **Streaming**: records are parsed and timed lazily, in bounded memory.
//   - **Duration inference**: skip windows, background entries and
//     explicit tags are honoured, with warnings for odd data.
//   - **Aggregation**: totals per tag, per tag prefix and per day.
//   - **Maintenance**: redundant "+minutes" tags can be stripped in place.
//   - **Export**: JSON, YAML and CSV through the fs adapter.
//   - **Watch**: recompute totals each time the journal is saved.
//
// Usage:
//
//	records := vimjournal.Parse(text)
//	totals, err := vimjournal.SumDurationsByTag(records)
//
// The vimjournal command exposes the same operations on files and stdin.
package vimjournal
