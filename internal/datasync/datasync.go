// Package datasync imports YAML decks into the card store.
package datasync

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/nativecards/internal/card"
)

// Deck is the YAML file format for a set of cards.
//
//	deck: 3
//	cards:
//	  - word: break the ice
//	    category: phrase
//	    priority: 3
//	    definition: to start a conversation
type Deck struct {
	DeckID int64      `yaml:"deck"`
	Cards  []DeckCard `yaml:"cards"`
}

type DeckCard struct {
	Word        string         `yaml:"word"`
	Category    string         `yaml:"category"`
	Priority    *card.Priority `yaml:"priority"`
	Definition  string         `yaml:"definition"`
	Translation string         `yaml:"translation"`
}

// ReadDeckFile decodes the deck at path. Unknown keys are rejected.
func ReadDeckFile(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadDeck(f)
}

func ReadDeck(r io.Reader) (Deck, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var deck Deck
	if err := decoder.Decode(&deck); err != nil {
		if err == io.EOF {
			return Deck{}, nil
		}
		return Deck{}, fmt.Errorf("yaml.Decode > %w", err)
	}
	return deck, nil
}

// ImportResult tracks counts for an import.
type ImportResult struct {
	CardsNew     int
	CardsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

type CardStore interface {
	ExistingWords(ctx context.Context, userID int64, words []string) (map[string]bool, error)
	BatchCreate(ctx context.Context, cards []card.Card) error
}

// Importer writes deck cards the user does not own yet.
type Importer struct {
	cards  CardStore
	writer io.Writer
}

func NewImporter(cards CardStore, writer io.Writer) *Importer {
	return &Importer{
		cards:  cards,
		writer: writer,
	}
}

// ImportDeck creates the deck's cards for userID. Words the user already has, and repeats within the deck, are skipped.
func (imp *Importer) ImportDeck(ctx context.Context, userID int64, deck Deck, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	candidates := make([]card.Card, 0, len(deck.Cards))
	seen := make(map[string]bool, len(deck.Cards))
	for i, dc := range deck.Cards {
		c, err := toCard(userID, deck.DeckID, dc)
		if err != nil {
			return nil, fmt.Errorf("cards[%d] > %w", i, err)
		}
		if seen[c.Word] {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (duplicated in deck)\n", c.Word)
			result.CardsSkipped++
			continue
		}
		seen[c.Word] = true
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return &result, nil
	}

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.Word
	}
	existing, err := imp.cards.ExistingWords(ctx, userID, words)
	if err != nil {
		return nil, fmt.Errorf("ExistingWords() > %w", err)
	}

	newCards := make([]card.Card, 0, len(candidates))
	for _, c := range candidates {
		if existing[c.Word] {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", c.Word)
			result.CardsSkipped++
			continue
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", c.Word, c.Category)
		newCards = append(newCards, c)
	}
	result.CardsNew = len(newCards)

	if opts.DryRun || len(newCards) == 0 {
		return &result, nil
	}
	if err := imp.cards.BatchCreate(ctx, newCards); err != nil {
		return nil, fmt.Errorf("BatchCreate() > %w", err)
	}
	return &result, nil
}

func toCard(userID, deckID int64, dc DeckCard) (card.Card, error) {
	word := strings.TrimSpace(dc.Word)
	if word == "" {
		return card.Card{}, fmt.Errorf("word is required")
	}

	category := card.CategoryWord
	if dc.Category != "" {
		var err error
		if category, err = card.ParseCategory(dc.Category); err != nil {
			return card.Card{}, fmt.Errorf("%q: %w", word, err)
		}
	}

	priority := card.PriorityNormal
	if dc.Priority != nil {
		if !dc.Priority.Valid() {
			return card.Card{}, fmt.Errorf("%q: invalid priority %d", word, int(*dc.Priority))
		}
		priority = *dc.Priority
	}

	return card.Card{
		UserID:      userID,
		DeckID:      deckID,
		Word:        word,
		Category:    category,
		Priority:    priority,
		Definition:  strings.TrimSpace(dc.Definition),
		Translation: strings.TrimSpace(dc.Translation),
	}, nil
}
