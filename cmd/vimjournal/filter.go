package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// runFilter prints the records passing f in file order.
func (a *app) runFilter(cmd *cobra.Command, files []string, f journal.Filter) error {
	records, err := a.session.Records(a.inputs(files), f)
	if err != nil {
		return err
	}
	for _, r := range records {
		printRecord(cmd.OutOrStdout(), r)
	}
	return nil
}

func newFilterFromCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-from <seq> [files...]",
		Short: "Print entries later than seq, sorted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := core.Seq(args[0])
			if !from.Valid() {
				return core.ErrInvalidSeq
			}
			records, err := a.session.Records(a.inputs(args[1:]), journal.After(from))
			if err != nil {
				return err
			}
			journal.SortBySeq(records)
			for _, r := range records {
				printRecord(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func newFilterRatingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-rating <ratings> [files...]",
		Short: "Print entries whose rating is one of ratings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFilter(cmd, args[1:], journal.RatingIn(args[0]))
		},
	}
}

func newFilterSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-summary <text> [files...]",
		Short: "Print entries whose summary contains text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFilter(cmd, args[1:], journal.SummaryContains(args[0]))
		},
	}
}

func newFilterTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-tag <pattern> [files...]",
		Short: "Print entries with a tag matching a glob pattern",
		Example: `  vimjournal filter-tag '/work*' log.journal
  vimjournal filter-tag '=p{1,2}' log.journal`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := journal.TagMatches(args[0])
			if err != nil {
				return err
			}
			return a.runFilter(cmd, args[1:], f)
		},
	}
}
