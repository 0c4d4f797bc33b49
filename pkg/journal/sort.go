package journal

import (
	"slices"
	"strings"

	"github.com/aretw0/vimjournal/pkg/core"
)

// SortBySeq sorts records in place by sequence. Approximate records tie
// with records sharing their known prefix, so the sort is stable.
func SortBySeq(records []core.Record) {
	slices.SortStableFunc(records, func(a, b core.Record) int {
		return core.Compare(a.Seq, b.Seq)
	})
}

// SortBySummary sorts records in place by summary, keeping file order for
// equal summaries.
func SortBySummary(records []core.Record) {
	slices.SortStableFunc(records, func(a, b core.Record) int {
		return strings.Compare(a.Summary, b.Summary)
	})
}
