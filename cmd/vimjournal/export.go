package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/journal"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		tag    string
	)
	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Write entries with their durations as json, yaml, csv or journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []journal.Option
			if tag != "" {
				opts = append(opts, journal.WithFilter(journal.HasTag(tag)))
			}
			return a.session.Export(a.inputs(args), format, cmd.OutOrStdout(), opts...)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml, csv or journal")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only export entries carrying this tag")
	return cmd
}
