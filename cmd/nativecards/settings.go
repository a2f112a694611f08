package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/nativecards/internal/client"
	"github.com/at-ishikawa/nativecards/internal/server"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Show or change lesson settings",
	}

	settingsCommand.AddCommand(newSettingsShowCommand())
	settingsCommand.AddCommand(newSettingsSetCommand())

	return settingsCommand
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current lesson settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			apiClient := client.New(cfg.Client)
			defer func() {
				_ = apiClient.Close()
			}()

			s, err := apiClient.Settings(cmd.Context())
			if err != nil {
				return fmt.Errorf("apiClient.Settings() > %w", err)
			}
			return writeSettings(cmd.OutOrStdout(), s)
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var values settings.UserSettings
	command := &cobra.Command{
		Use:   "set",
		Short: "Change lesson settings. Only the given flags are updated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := settingsPatch(cmd, values)
			if patch.IsEmpty() {
				return fmt.Errorf("no settings given")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			apiClient := client.New(cfg.Client)
			defer func() {
				_ = apiClient.Close()
			}()

			s, err := apiClient.UpdateSettings(cmd.Context(), patch)
			if err != nil {
				return fmt.Errorf("apiClient.UpdateSettings() > %w", err)
			}
			return writeSettings(cmd.OutOrStdout(), s)
		},
	}
	flags := command.Flags()
	flags.IntVar(&values.AttemptsToRemember, "attempts-to-remember", 0, "correct attempts needed to learn a card")
	flags.IntVar(&values.CardsPerLesson, "cards-per-lesson", 0, "new cards per lesson")
	flags.IntVar(&values.CardsToRepeat, "cards-to-repeat", 0, "learned cards per lesson")
	flags.IntVar(&values.LessonLatestDays, "lesson-latest-days", 0, "days a card counts as latest")
	flags.IntVar(&values.CardsRepeatPerLesson, "cards-repeat-per-lesson", 0, "times each new card is asked per lesson")
	flags.IntVar(&values.LessonsPerDay, "lessons-per-day", 0, "daily lesson target")
	flags.BoolVar(&values.PlayAudioOnOpen, "play-audio-on-open", false, "play audio when a card opens")
	return command
}

// settingsPatch keeps the flags set on the command line.
func settingsPatch(cmd *cobra.Command, values settings.UserSettings) settings.Patch {
	var patch settings.Patch
	flags := cmd.Flags()
	if flags.Changed("attempts-to-remember") {
		patch.AttemptsToRemember = &values.AttemptsToRemember
	}
	if flags.Changed("cards-per-lesson") {
		patch.CardsPerLesson = &values.CardsPerLesson
	}
	if flags.Changed("cards-to-repeat") {
		patch.CardsToRepeat = &values.CardsToRepeat
	}
	if flags.Changed("lesson-latest-days") {
		patch.LessonLatestDays = &values.LessonLatestDays
	}
	if flags.Changed("cards-repeat-per-lesson") {
		patch.CardsRepeatPerLesson = &values.CardsRepeatPerLesson
	}
	if flags.Changed("lessons-per-day") {
		patch.LessonsPerDay = &values.LessonsPerDay
	}
	if flags.Changed("play-audio-on-open") {
		patch.PlayAudioOnOpen = &values.PlayAudioOnOpen
	}
	return patch
}

func writeSettings(w io.Writer, s server.SettingsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "attempts to remember\t%d\n", s.AttemptsToRemember)
	fmt.Fprintf(tw, "cards per lesson\t%d\n", s.CardsPerLesson)
	fmt.Fprintf(tw, "cards to repeat\t%d\n", s.CardsToRepeat)
	fmt.Fprintf(tw, "lesson latest days\t%d\n", s.LessonLatestDays)
	fmt.Fprintf(tw, "cards repeat per lesson\t%d\n", s.CardsRepeatPerLesson)
	fmt.Fprintf(tw, "lessons per day\t%d\n", s.LessonsPerDay)
	fmt.Fprintf(tw, "play audio on open\t%t\n", s.PlayAudioOnOpen)
	fmt.Fprintf(tw, "attempts per day\t%d\n", s.AttemptsPerDay)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}
	return nil
}
