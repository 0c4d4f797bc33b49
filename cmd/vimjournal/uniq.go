package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal/pkg/uniq"
)

func newUniqCmd() *cobra.Command {
	var dups bool
	cmd := &cobra.Command{
		Use:   "uniq <files...> [- <seen files...>]",
		Short: "Print lines whose content was not seen before",
		Long: `Print the lines of each file whose content (letters only, ignoring case,
timestamps, tags and "-- attributions") did not appear earlier, prefixed
with the file name. Files after a lone "-" are only read to prime the set
of seen lines.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, seenFiles := uniq.SplitArgs(args)
			set := uniq.NewSet()
			for _, path := range seenFiles {
				if err := set.LoadFile(path); err != nil {
					return err
				}
			}
			for _, path := range inputs {
				if err := emitUniq(cmd, set, path, dups); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dups, "dups", false, "Print lines already seen instead")
	return cmd
}

func emitUniq(cmd *cobra.Command, set *uniq.Set, path string, dups bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	if dups {
		_, err = set.Duplicates(path, f, cmd.OutOrStdout())
	} else {
		_, err = set.Unique(path, f, cmd.OutOrStdout())
	}
	return err
}
