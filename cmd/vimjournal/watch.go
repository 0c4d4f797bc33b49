package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file> [tag]",
		Short: "Print hours per tag each time the journal is saved",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var tag string
			if len(args) > 1 {
				tag = args[1]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return a.session.RunWatch(ctx, path, func(_ context.Context, path string) error {
				totals, err := a.session.TagTotals([]string{path}, tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s %s\n", seqColor(time.Now().Format("15:04:05")), path)
				printTotals(out, totals.ByMinutes())
				return nil
			})
		},
	}
}
