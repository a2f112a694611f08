package lesson

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/nativecards/internal/attempt"
)

// AttemptStore persists attempts, running a hook before the write.
type AttemptStore interface {
	Create(ctx context.Context, a *attempt.Attempt, beforeCreate attempt.BeforeCreateFunc) error
}

// Recorder stores new attempts and applies their score to the card.
type Recorder struct {
	attempts AttemptStore
	settings SettingsProvider
}

func NewRecorder(attempts AttemptStore, settingsProvider SettingsProvider) *Recorder {
	return &Recorder{attempts: attempts, settings: settingsProvider}
}

// Record validates a new attempt and stores it. Score and card mastery are computed once, here.
func (r *Recorder) Record(ctx context.Context, a *attempt.Attempt) error {
	if err := validateNewAttempt(a); err != nil {
		return err
	}

	s, err := r.settings.Get(ctx, a.UserID)
	if err != nil {
		return fmt.Errorf("settings.Get(%d) > %w", a.UserID, err)
	}
	if err := r.attempts.Create(ctx, a, ScoreAttempt(s.AttemptsToRemember)); err != nil {
		return fmt.Errorf("attempts.Create(card %d) > %w", a.CardID, err)
	}
	return nil
}

func validateNewAttempt(a *attempt.Attempt) error {
	switch {
	case a.IsPersisted():
		return fmt.Errorf("%w: attempt %d already exists", ErrValidation, a.ID)
	case a.UserID == 0:
		return fmt.Errorf("%w: user is required", ErrValidation)
	case a.CardID == 0:
		return fmt.Errorf("%w: card is required", ErrValidation)
	case a.HintCount < 0:
		return fmt.Errorf("%w: hints_count must not be negative", ErrValidation)
	}
	if _, err := attempt.ParseForm(string(a.Form)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
