package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/nativecards/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/settings/mock_repository.go -package=mock_settings

const settingsColumns = "user_id, attempts_to_remember, cards_per_lesson, cards_to_repeat, lesson_latest_days, cards_repeat_per_lesson, lessons_per_day, play_audio_on_open, updated_at"

// SettingsRepository stores per-user settings.
type SettingsRepository interface {
	FindByUser(ctx context.Context, userID int64) (*UserSettings, error)
	Save(ctx context.Context, s UserSettings) error
}

// DBSettingsRepository implements SettingsRepository on top of sqlx.
type DBSettingsRepository struct {
	db *sqlx.DB
}

// NewDBSettingsRepository creates a new DBSettingsRepository.
func NewDBSettingsRepository(db *sqlx.DB) *DBSettingsRepository {
	return &DBSettingsRepository{db: db}
}

// FindByUser returns the user's stored settings, or ErrNotFound.
func (r *DBSettingsRepository) FindByUser(ctx context.Context, userID int64) (*UserSettings, error) {
	var s UserSettings
	err := r.db.GetContext(ctx, &s,
		r.db.Rebind("SELECT "+settingsColumns+" FROM user_settings WHERE user_id = ?"), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user_settings) > %w", err)
	}
	return &s, nil
}

// Save inserts or updates the user's settings row.
func (r *DBSettingsRepository) Save(ctx context.Context, s UserSettings) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count,
			tx.Rebind("SELECT COUNT(*) FROM user_settings WHERE user_id = ?"), s.UserID); err != nil {
			return fmt.Errorf("tx.GetContext(count user_settings) > %w", err)
		}

		if count > 0 {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE user_settings SET
				attempts_to_remember = ?, cards_per_lesson = ?, cards_to_repeat = ?, lesson_latest_days = ?,
				cards_repeat_per_lesson = ?, lessons_per_day = ?, play_audio_on_open = ?, updated_at = CURRENT_TIMESTAMP
				WHERE user_id = ?`),
				s.AttemptsToRemember, s.CardsPerLesson, s.CardsToRepeat, s.LessonLatestDays,
				s.CardsRepeatPerLesson, s.LessonsPerDay, s.PlayAudioOnOpen, s.UserID); err != nil {
				return fmt.Errorf("tx.ExecContext(update user_settings) > %w", err)
			}
			return nil
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO user_settings
			(user_id, attempts_to_remember, cards_per_lesson, cards_to_repeat, lesson_latest_days,
			cards_repeat_per_lesson, lessons_per_day, play_audio_on_open)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			s.UserID, s.AttemptsToRemember, s.CardsPerLesson, s.CardsToRepeat, s.LessonLatestDays,
			s.CardsRepeatPerLesson, s.LessonsPerDay, s.PlayAudioOnOpen); err != nil {
			return fmt.Errorf("tx.ExecContext(insert user_settings) > %w", err)
		}
		return nil
	})
}
