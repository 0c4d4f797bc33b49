package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/journal"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [files...]",
		Short: "Print entries in timestamp order",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.session.Records(a.inputs(args), nil)
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

func newSortSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort-summary [files...]",
		Short: "Print entries ordered by summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.session.Records(a.inputs(args), nil)
			if err != nil {
				return err
			}
			journal.SortBySummary(records)
			for _, r := range records {
				printRecord(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}
