package lesson

import (
	"fmt"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/card"
)

// CalculateScore returns the signed mastery delta of one answer.
// A hint attempt counts at least one hint. Hints shrink the reward of a correct answer
// and grow the penalty of a wrong one.
func CalculateScore(isCorrect, isHint bool, hintCount, attemptsToRemember int) (int, error) {
	if attemptsToRemember <= 0 {
		return 0, fmt.Errorf("%w: attempts to remember must be positive, got %d", ErrInvalidConfiguration, attemptsToRemember)
	}

	score := 100 / attemptsToRemember
	if isHint {
		hintCount = max(1, hintCount)
		if isCorrect {
			score = score / (hintCount + 1)
		} else {
			score = score * (hintCount + 1)
		}
	}

	if !isCorrect {
		return -score, nil
	}
	return score, nil
}

// ComputeScoreAndMastery returns the unsigned score to store on the attempt and the card's clamped new mastery.
func ComputeScoreAndMastery(a attempt.Attempt, mastery, attemptsToRemember int) (score, newMastery int, err error) {
	delta, err := CalculateScore(a.IsCorrect, a.IsHint, a.HintCount, attemptsToRemember)
	if err != nil {
		return 0, mastery, err
	}
	if delta < 0 {
		score = -delta
	} else {
		score = delta
	}
	return score, card.ClampMastery(mastery + delta), nil
}

// ScoreAttempt returns a hook that scores a new attempt and moves its card's mastery.
// Attempts that are already stored are left untouched.
func ScoreAttempt(attemptsToRemember int) attempt.BeforeCreateFunc {
	return func(a *attempt.Attempt, c *card.Card) error {
		if a.IsPersisted() {
			return nil
		}
		if a.IsHint {
			a.HintCount = max(1, a.HintCount)
		}

		score, mastery, err := ComputeScoreAndMastery(*a, c.Mastery, attemptsToRemember)
		if err != nil {
			return err
		}
		a.Score = score
		c.Mastery = mastery
		return nil
	}
}
