// Package statistics aggregates a user's attempts and cards into study progress figures.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/settings"
)

// PeriodStatistics counts attempts made since the start of a period.
type PeriodStatistics struct {
	Attempts          int
	CorrectAttempts   int
	IncorrectAttempts int
}

// Statistics is the progress summary of one user.
type Statistics struct {
	Today                   PeriodStatistics
	TodayAttemptsToComplete int
	// TodayAttemptsRemain goes negative once the daily target is exceeded.
	TodayAttemptsRemain int
	Week                PeriodStatistics
	Month               PeriodStatistics
	Cards               card.Counts
}

// Calculate builds statistics from attempts of the last month.
// Today starts at midnight UTC, the week 7 days before that and the month one month before that.
func Calculate(attempts []attempt.Attempt, counts card.Counts, attemptsPerDay int, now time.Time) Statistics {
	today, week, month := periodStarts(now)

	var stats Statistics
	for _, a := range attempts {
		created := a.CreatedAt.UTC()
		if created.Before(month) {
			continue
		}
		addAttempt(&stats.Month, a)
		if created.Before(week) {
			continue
		}
		addAttempt(&stats.Week, a)
		if created.Before(today) {
			continue
		}
		addAttempt(&stats.Today, a)
	}

	stats.TodayAttemptsToComplete = attemptsPerDay
	stats.TodayAttemptsRemain = attemptsPerDay - stats.Today.Attempts
	stats.Cards = counts
	return stats
}

func addAttempt(p *PeriodStatistics, a attempt.Attempt) {
	p.Attempts++
	if a.IsCorrect {
		p.CorrectAttempts++
	} else {
		p.IncorrectAttempts++
	}
}

func periodStarts(now time.Time) (today, week, month time.Time) {
	now = now.UTC()
	today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today, today.AddDate(0, 0, -7), today.AddDate(0, -1, 0)
}

// AttemptFinder lists a user's attempts since a point in time.
type AttemptFinder interface {
	FindSince(ctx context.Context, userID int64, since time.Time) ([]attempt.Attempt, error)
}

// CardCounter counts a user's cards.
type CardCounter interface {
	Count(ctx context.Context, userID int64) (card.Counts, error)
}

// SettingsGetter returns a user's settings.
type SettingsGetter interface {
	Get(ctx context.Context, userID int64) (settings.UserSettings, error)
}

// Collector loads what Calculate needs for a user.
type Collector struct {
	attempts AttemptFinder
	cards    CardCounter
	settings SettingsGetter
	now      func() time.Time
}

func NewCollector(attempts AttemptFinder, cards CardCounter, settingsGetter SettingsGetter) *Collector {
	return &Collector{
		attempts: attempts,
		cards:    cards,
		settings: settingsGetter,
		now:      time.Now,
	}
}

func (c *Collector) Collect(ctx context.Context, userID int64) (Statistics, error) {
	now := c.now()
	_, _, month := periodStarts(now)

	s, err := c.settings.Get(ctx, userID)
	if err != nil {
		return Statistics{}, fmt.Errorf("settings.Get(%d) > %w", userID, err)
	}
	attempts, err := c.attempts.FindSince(ctx, userID, month)
	if err != nil {
		return Statistics{}, fmt.Errorf("attempts.FindSince(%d) > %w", userID, err)
	}
	counts, err := c.cards.Count(ctx, userID)
	if err != nil {
		return Statistics{}, fmt.Errorf("cards.Count(%d) > %w", userID, err)
	}
	return Calculate(attempts, counts, s.AttemptsPerDay(), now), nil
}
