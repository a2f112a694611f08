package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/cli"
	"github.com/at-ishikawa/nativecards/internal/client"
	"github.com/at-ishikawa/nativecards/internal/lesson"
)

type criteriaFlags struct {
	latestOnly  bool
	speak       bool
	deckID      int64
	category    string
	completeGTE int
	completeLTE int
	ordering    string
}

func newCriteriaFlagSet() (*pflag.FlagSet, *criteriaFlags) {
	var flags criteriaFlags
	fs := pflag.NewFlagSet("criteria", pflag.ContinueOnError)
	fs.BoolVar(&flags.latestOnly, "latest", false, "only new cards created within the latest lesson days")
	fs.BoolVar(&flags.speak, "speak", false, "include speaking questions")
	fs.Int64Var(&flags.deckID, "deck", 0, "deck id")
	fs.StringVar(&flags.category, "category", "", "word, phrase or phrasal_verb")
	fs.IntVar(&flags.completeGTE, "complete-gte", 0, "minimum mastery of new cards")
	fs.IntVar(&flags.completeLTE, "complete-lte", 0, "maximum mastery of new cards (default 99)")
	fs.StringVar(&flags.ordering, "ordering", "", "complete, priority or created, prefixed with - for descending")
	return fs, &flags
}

// criteria validates the flags the same way the lesson endpoint validates query parameters.
func (f *criteriaFlags) criteria(fs *pflag.FlagSet) (lesson.Criteria, error) {
	values := url.Values{}
	if f.latestOnly {
		values.Set("is_latest", "1")
	}
	if f.speak {
		values.Set("speak", "1")
	}
	if f.deckID != 0 {
		values.Set("deck", strconv.FormatInt(f.deckID, 10))
	}
	if f.category != "" {
		values.Set("category", f.category)
	}
	if fs.Changed("complete-gte") {
		values.Set("complete__gte", strconv.Itoa(f.completeGTE))
	}
	if fs.Changed("complete-lte") {
		values.Set("complete__lte", strconv.Itoa(f.completeLTE))
	}
	if f.ordering != "" {
		if _, ok := card.ParseOrdering(f.ordering); !ok {
			return lesson.Criteria{}, fmt.Errorf("unknown ordering %q", f.ordering)
		}
		values.Set("ordering", f.ordering)
	}
	return lesson.CriteriaFromValues(0, values)
}

func newLessonCommand() *cobra.Command {
	criteriaFlagSet, flags := newCriteriaFlagSet()
	command := &cobra.Command{
		Use:   "lesson",
		Short: "Start a lesson with cards from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			apiClient := client.New(cfg.Client)
			defer func() {
				_ = apiClient.Close()
			}()

			quiz, err := cli.NewLessonQuizCLI(cmd.Context(), apiClient, criteria, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lesson started with %d questions.\n\n", quiz.GetCardCount())
			return quiz.Run(cmd.Context(), quiz)
		},
	}
	command.Flags().AddFlagSet(criteriaFlagSet)
	return command
}
