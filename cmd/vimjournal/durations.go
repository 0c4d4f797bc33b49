package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

func newShowDurationsCmd(a *app) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "show-durations [files...]",
		Short: "Print entries with their inferred duration in minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []journal.Option
			if tag != "" {
				opts = append(opts, journal.WithFilter(journal.HasTag(tag)))
			}
			dated, err := a.session.Dated(a.inputs(args), opts...)
			if err != nil {
				return err
			}
			for _, r := range dated {
				printDated(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only show entries carrying this tag")
	return cmd
}

func newSumDurationsCmd(a *app) *cobra.Command {
	var byTime bool
	cmd := &cobra.Command{
		Use:   "sum-durations [tag] [files...]",
		Short: "Print hours per tag, optionally among entries carrying tag",
		Long: `Print hours per tag. With a tag argument only entries carrying that tag
(or one of its dotted subtags) are counted. A first argument that is not a
tag is read as a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) > 0 && isTagArg(args[0]) {
				tag, args = args[0], args[1:]
			}
			totals, err := a.session.TagTotals(a.inputs(args), tag)
			if err != nil {
				return err
			}
			if byTime {
				printTotals(cmd.OutOrStdout(), totals.ByMinutes())
			} else {
				printTotals(cmd.OutOrStdout(), totals.Sorted())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byTime, "by-time", false, "Order by hours, largest first")
	return cmd
}

func newSumDaysCmd(a *app) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "sum-days [files...]",
		Short: "Print hours per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f journal.Filter
			if tag != "" {
				f = journal.HasTag(tag)
			}
			totals, err := a.session.DayTotals(a.inputs(args), f)
			if err != nil {
				return err
			}
			printTotals(cmd.OutOrStdout(), totals.Sorted())
			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only count entries carrying this tag")
	return cmd
}

// isTagArg reports whether s reads as a tag rather than a path.
func isTagArg(s string) bool {
	return len(s) > 1 && s != "-" && strings.ContainsRune(core.TagMarkers, rune(s[0])) && !fileExists(s)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
