// Package card provides the flashcard model and its repository.
package card

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a card does not exist for the user.
var ErrNotFound = errors.New("card not found")

const (
	MinMastery = 0
	MaxMastery = 100
)

type Category string

const (
	CategoryWord         Category = "word"
	CategoryPhrase       Category = "phrase"
	CategoryPhrasalVerb  Category = "phrasal_verb"
	categoryUnrecognized Category = ""
)

// ParseCategory returns the category for s, or an error for unknown values.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryWord, CategoryPhrase, CategoryPhrasalVerb:
		return c, nil
	}
	return categoryUnrecognized, fmt.Errorf("unknown category %q", s)
}

// Priority ranks how important a card is to its owner.
type Priority int

const (
	PriorityVeryLow Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityVeryHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityVeryLow:
		return "very low"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityVeryHigh:
		return "very high"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	return p >= PriorityVeryLow && p <= PriorityVeryHigh
}

// Card is a single flashcard owned by a user.
// Mastery is exposed as "complete" to API clients.
type Card struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"-"`
	DeckID      int64     `db:"deck_id" json:"deck"`
	Word        string    `db:"word" json:"word"`
	Category    Category  `db:"category" json:"category"`
	Priority    Priority  `db:"priority" json:"priority"`
	Mastery     int       `db:"mastery" json:"complete"`
	Definition  string    `db:"definition" json:"definition"`
	Translation string    `db:"translation" json:"translation"`
	CreatedAt   time.Time `db:"created_at" json:"created"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated"`
}

// ClampMastery bounds m to [MinMastery, MaxMastery].
func ClampMastery(m int) int {
	if m < MinMastery {
		return MinMastery
	}
	if m > MaxMastery {
		return MaxMastery
	}
	return m
}

// IsLearned reports whether the card reached full mastery.
func (c Card) IsLearned() bool {
	return c.Mastery >= MaxMastery
}

// Counts summarizes a user's cards by learning state.
type Counts struct {
	Total     int `db:"total" json:"total"`
	Learned   int `db:"learned" json:"learned"`
	Unlearned int `db:"unlearned" json:"unlearned"`
}
