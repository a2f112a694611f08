package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

// DefaultRandomWordsLimit caps the decoy pool fetched per lesson.
const DefaultRandomWordsLimit = 100

// CardRepository is the card storage a lesson is built from.
type CardRepository interface {
	FindNewCards(ctx context.Context, filter card.NewCardFilter) ([]card.Card, error)
	FindLearnedCards(ctx context.Context, userID int64, limit int) ([]card.Card, error)
	RandomWords(ctx context.Context, userID int64, limit int) ([]string, error)
}

// SettingsProvider returns the tunables of a user.
type SettingsProvider interface {
	Get(ctx context.Context, userID int64) (settings.UserSettings, error)
}

// Item is one card of a lesson together with the form it is asked in and its answer choices.
type Item struct {
	card.Card
	Form    attempt.Form `json:"form"`
	Choices []string     `json:"choices"`
}

// Generator builds lessons. It keeps no state between calls.
type Generator struct {
	cards            CardRepository
	settings         SettingsProvider
	rand             Randomizer
	now              func() time.Time
	randomWordsLimit int
	choices          *ChoiceSelector
}

type GeneratorOption func(*Generator)

// WithRandomizer replaces the process-wide random source.
func WithRandomizer(r Randomizer) GeneratorOption {
	return func(g *Generator) {
		g.rand = r
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func WithRandomWordsLimit(limit int) GeneratorOption {
	return func(g *Generator) {
		if limit > 0 {
			g.randomWordsLimit = limit
		}
	}
}

func NewGenerator(cards CardRepository, settingsProvider SettingsProvider, opts ...GeneratorOption) *Generator {
	g := &Generator{
		cards:            cards,
		settings:         settingsProvider,
		rand:             globalRandomizer{},
		now:              time.Now,
		randomWordsLimit: DefaultRandomWordsLimit,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.choices = NewChoiceSelector(cards, g.rand, g.randomWordsLimit)
	return g
}

// Generate returns the shuffled items of one lesson.
// New cards are repeated CardsRepeatPerLesson times and followed by up to CardsToRepeat learned cards.
// Every item gets its own form and choices. Any failure aborts the whole lesson.
func (g *Generator) Generate(ctx context.Context, criteria Criteria) ([]Item, error) {
	if criteria.UserID == 0 {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	s, err := g.settings.Get(ctx, criteria.UserID)
	if err != nil {
		return nil, fmt.Errorf("settings.Get(%d) > %w", criteria.UserID, err)
	}

	newCards, err := g.cards.FindNewCards(ctx, g.newCardFilter(criteria, s))
	if err != nil {
		return nil, fmt.Errorf("FindNewCards() > %w", err)
	}
	learnedCards, err := g.cards.FindLearnedCards(ctx, criteria.UserID, s.CardsToRepeat)
	if err != nil {
		return nil, fmt.Errorf("FindLearnedCards() > %w", err)
	}

	cards := make([]card.Card, 0, len(newCards)*max(s.CardsRepeatPerLesson, 0)+len(learnedCards))
	for i := 0; i < s.CardsRepeatPerLesson; i++ {
		cards = append(cards, newCards...)
	}
	cards = append(cards, learnedCards...)

	items := make([]Item, 0, len(cards))
	if len(cards) == 0 {
		return items, nil
	}

	pool, err := g.cards.RandomWords(ctx, criteria.UserID, g.randomWordsLimit)
	if err != nil {
		return nil, fmt.Errorf("RandomWords() > %w", err)
	}

	forms := criteria.Forms()
	for _, c := range cards {
		choices, err := g.choices.Select(ctx, criteria.UserID, pool, c.Word, DefaultChoicesLimit)
		if err != nil {
			return nil, fmt.Errorf("select choices for %q > %w", c.Word, err)
		}
		items = append(items, Item{
			Card:    c,
			Form:    forms[g.rand.Intn(len(forms))],
			Choices: choices,
		})
	}
	g.rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	slog.Default().Debug("lesson generated",
		"user_id", criteria.UserID,
		"new_cards", len(newCards),
		"learned_cards", len(learnedCards),
		"items", len(items),
		"decoy_pool", len(pool))
	return items, nil
}

func (g *Generator) newCardFilter(criteria Criteria, s settings.UserSettings) card.NewCardFilter {
	lte, gte := criteria.masteryBounds()
	filter := card.NewCardFilter{
		UserID:     criteria.UserID,
		MasteryLTE: lte,
		MasteryGTE: gte,
		DeckID:     criteria.DeckID,
		Category:   criteria.Category,
		Ordering:   criteria.Ordering,
		Limit:      s.CardsPerLesson,
	}
	if criteria.IsLatestOnly {
		now := g.now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		since := today.AddDate(0, 0, -s.LessonLatestDays)
		filter.CreatedSince = &since
	}
	return filter
}
