package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pombar/internal/bootstrap"
	baroutadapter "pombar/internal/modules/bar/adapter/out"
	"pombar/internal/platform/config"
	apperrors "pombar/internal/platform/errors"
)

const version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := config.Default()

	root := &cobra.Command{
		Use:   "pombar",
		Short: "A pausable pomodoro timer with status-bar integration",
		Long: "pombar runs alternating work and break sessions, records completed work\n" +
			"time per weekday, and can mirror its status to polybar or xmobar through\n" +
			"named pipes.\n\n" +
			"The record file is stored at " + settings.RecordPath + ".\n" +
			"Defaults can be set in " + config.FilePath() + ".",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimer(cmd, &settings)
		},
	}

	flags := root.Flags()
	flags.IntVarP(&settings.WorkMinutes, "work", "w", settings.WorkMinutes, "minutes per work session")
	flags.IntVarP(&settings.BreakMinutes, "break", "b", settings.BreakMinutes, "minutes per break session")
	flags.IntVarP(&settings.LongBreakMinutes, "long-break", "l", settings.LongBreakMinutes, "minutes per long break session")
	flags.IntVarP(&settings.StartSession, "session", "s", settings.StartSession, "session number on start")
	flags.StringVar(&settings.WorkCommand, "cmd-work", settings.WorkCommand, "command to run when a work session ends (e.g. \"xset dpms force off\")")
	flags.StringVar(&settings.BreakCommand, "cmd-break", settings.BreakCommand, "like --cmd-work but for an unskipped break session")
	flags.StringVar(&settings.BarType, "bar", settings.BarType, "status bar to update: none|polybar|xmobar")
	flags.BoolVar(&settings.Notify, "notify", settings.Notify, "send a desktop notification when a session completes")

	root.AddCommand(newRecordCmd(), newRawCmd())
	return root
}

func runTimer(cmd *cobra.Command, settings *config.Settings) error {
	if err := config.ApplyFile(settings, cmd.Flags().Changed); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	app, err := bootstrap.New(*settings)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.RecordCLI.EnsureExists(cmd.Context()); err != nil {
		return err
	}
	if err := baroutadapter.EnsureChannels(app.BarType); err != nil {
		if errors.Is(err, apperrors.ErrBarRestartNeeded) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.BarType.RestartHint())
		}
		return err
	}
	return bootstrap.RunTUI(app)
}

func newRecordCmd() *cobra.Command {
	var weeks, sessionMinutes int

	record := &cobra.Command{
		Use:   "record",
		Short: "Show a weekly summary of completed work sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := config.Default()
			if err := config.ApplyFile(&settings, cmd.Flags().Changed); err != nil {
				return err
			}
			if !cmd.Flags().Changed("work") {
				sessionMinutes = settings.WorkMinutes
			}
			app, err := bootstrap.New(settings)
			if err != nil {
				return err
			}
			out, err := app.RecordCLI.Summary(cmd.Context(), weeks, sessionMinutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	record.Flags().IntVarP(&weeks, "weeks", "n", 4, "number of weeks to include")
	record.Flags().IntVarP(&sessionMinutes, "work", "w", 25, "minutes per work session, used as the unit")
	return record
}

func newRawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raw",
		Short: "Dump the raw record file in minutes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := config.Default()
			if err := config.ApplyFile(&settings, cmd.Flags().Changed); err != nil {
				return err
			}
			app, err := bootstrap.New(settings)
			if err != nil {
				return err
			}
			if err := app.RecordCLI.EnsureExists(cmd.Context()); err != nil {
				return err
			}
			raw, err := app.RecordCLI.Raw(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}
}
