package main

import (
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/vimjournal/internal/platform"
	"github.com/aretw0/vimjournal/pkg/journal"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	session *platform.Session
	logger  *slog.Logger
}

// inputs returns the journal paths: positional args, else --glob, else
// the configured journals, else stdin.
func (a *app) inputs(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return a.v.GetStringSlice("glob")
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "vimjournal",
		Short: "Query and maintain plain-text time journals",
		Long: `vimjournal reads journals made of "<seq> |<rating> summary tags" headers,
infers how long each entry lasted and reports where the time went.

Journals are read from the files given as arguments, from --glob
patterns, from the journals listed in .vimjournal.yaml, or from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(a.logger)

			switch a.v.GetString("color") {
			case "always":
				color.NoColor = false
			case "never":
				color.NoColor = true
			}

			sessionOpts := []platform.Option{platform.WithLogger(a.logger)}
			if path := a.v.GetString("config"); path != "" {
				sessionOpts = append(sessionOpts, platform.WithConfigFile(path))
			}
			if a.v.GetBool("lenient") {
				sessionOpts = append(sessionOpts, platform.WithStrict(false))
			}
			if a.v.IsSet("min-gap") {
				sessionOpts = append(sessionOpts, platform.WithMinGap(a.v.GetInt("min-gap")))
			}
			sessionOpts = append(sessionOpts, platform.WithStdin(cmd.InOrStdin()))
			session, err := platform.New(sessionOpts...)
			if err != nil {
				return err
			}
			a.session = session
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Bool("lenient", false, "Warn instead of failing when a skip window hides a selected entry")
	flags.String("config", "", "Config file (default: nearest "+platform.ConfigFileName+")")
	flags.StringSlice("glob", nil, "Journal file patterns, ** allowed (repeatable)")
	flags.Int("min-gap", journal.DefaultMinGap, "Tolerance in minutes for strip-durations")
	flags.String("color", "auto", "Colorize output: auto, always or never")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix("VIMJOURNAL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		newFilterFromCmd(a),
		newFilterRatingCmd(a),
		newFilterSummaryCmd(a),
		newFilterTagCmd(a),
		newShowDurationsCmd(a),
		newSortCmd(a),
		newSortSummaryCmd(a),
		newSumDurationsCmd(a),
		newSumDaysCmd(a),
		newStripDurationsCmd(a),
		newExportCmd(a),
		newUniqCmd(),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}
