package lesson

import (
	"context"
	"fmt"
	"slices"
)

// DefaultChoicesLimit is the number of decoys offered with a word.
const DefaultChoicesLimit = 3

// WordSource returns random distinct words of a user.
type WordSource interface {
	RandomWords(ctx context.Context, userID int64, limit int) ([]string, error)
}

// ChoiceSelector picks the answer choices shown with a lesson item.
type ChoiceSelector struct {
	words      WordSource
	rand       Randomizer
	wordsLimit int
}

func NewChoiceSelector(words WordSource, r Randomizer, wordsLimit int) *ChoiceSelector {
	if r == nil {
		r = globalRandomizer{}
	}
	return &ChoiceSelector{words: words, rand: r, wordsLimit: wordsLimit}
}

// Select picks up to limit words from words, falling back to the user's random words when words is empty.
// When additional is set, one more choice is picked and additional is guaranteed to be among them.
func (s *ChoiceSelector) Select(ctx context.Context, userID int64, words []string, additional string, limit int) ([]string, error) {
	if len(words) == 0 && userID == 0 {
		return nil, fmt.Errorf("%w: no words and no user to select choices from", ErrValidation)
	}
	if len(words) == 0 {
		fetched, err := s.words.RandomWords(ctx, userID, s.wordsLimit)
		if err != nil {
			return nil, fmt.Errorf("RandomWords(%d) > %w", userID, err)
		}
		words = fetched
	}
	return selectChoices(s.rand, words, additional, limit), nil
}

func selectChoices(r Randomizer, words []string, additional string, limit int) []string {
	if additional != "" {
		limit++
	}
	choices := sample(r, words, limit)
	if additional != "" && !slices.Contains(choices, additional) {
		if len(choices) > 0 {
			choices = choices[1:]
		}
		choices = append(choices, additional)
	}
	r.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}
