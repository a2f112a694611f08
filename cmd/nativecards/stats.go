package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/nativecards/internal/client"
	"github.com/at-ishikawa/nativecards/internal/server"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show attempt and card statistics",
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

			stats, err := apiClient.Statistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("apiClient.Statistics() > %w", err)
			}
			return writeStatistics(cmd.OutOrStdout(), stats)
		},
	}
}

func writeStatistics(w io.Writer, stats server.StatisticsResponse) error {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(w, "Today")
	fmt.Fprintf(w, "  %d/%d attempts, %d remaining (%d correct, %d incorrect)\n",
		stats.TodayAttempts, stats.TodayAttemptsToComplete, max(stats.TodayAttemptsRemain, 0),
		stats.TodayCorrectAttempts, stats.TodayIncorrectAttempts)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Period\tAttempts\tCorrect\tIncorrect")
	fmt.Fprintf(tw, "today\t%d\t%d\t%d\n", stats.TodayAttempts, stats.TodayCorrectAttempts, stats.TodayIncorrectAttempts)
	fmt.Fprintf(tw, "week\t%d\t%d\t%d\n", stats.WeekAttempts, stats.WeekCorrectAttempts, stats.WeekIncorrectAttempts)
	fmt.Fprintf(tw, "month\t%d\t%d\t%d\n", stats.MonthAttempts, stats.MonthCorrectAttempts, stats.MonthIncorrectAttempts)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}

	_, _ = bold.Fprintln(w, "Cards")
	fmt.Fprintf(w, "  %d total, %d learned, %d to learn\n", stats.TotalCards, stats.LearnedCards, stats.UnlearnedCards)
	return nil
}
