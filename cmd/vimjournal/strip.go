package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/adapters/fs"
	"github.com/aretw0/vimjournal/pkg/core"
)

func newStripDurationsCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "strip-durations [files...]",
		Short: "Remove +minutes tags that only repeat the gap to the next entry",
		Long: `Remove +minutes tags whose value is within --min-gap minutes of the gap
to the next entry. Without --write the result is printed; with --write
each file is rewritten in place and only changed headers are touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				return a.session.Strip(a.inputs(args), func(r core.Record) error {
					printRecord(cmd.OutOrStdout(), r)
					return nil
				})
			}
			paths, err := fs.Expand(a.inputs(args))
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("--write needs journal files")
			}
			for _, path := range paths {
				n, err := a.session.StripFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d stripped\n", path, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the files in place")
	return cmd
}
