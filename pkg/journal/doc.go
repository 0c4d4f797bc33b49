// Package journal turns a stream of journal text into records and derives
// how long each record lasted.
//
// Every stage is a pull cursor: Parser reads records from lines, Engine
// reads records and attaches durations, and the aggregation helpers fold
// an Engine into totals. Nothing reads further ahead than a record's
// interval needs, so journals of any size stream in constant memory.
//
// Usage:
//
//	p := journal.NewParser(f)
//	totals, err := journal.SumDurationsByTagFor(p, "=work")
package journal
