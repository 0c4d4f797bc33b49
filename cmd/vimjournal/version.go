package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/vimjournal"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vimjournal",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vimjournal version %s\n", vimjournal.Version)
		},
	}
}
