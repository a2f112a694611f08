package attempt

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/nativecards/internal/card"
	"github.com/at-ishikawa/nativecards/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/attempt/mock_repository.go -package=mock_attempt

const attemptColumns = "id, user_id, card_id, form, is_correct, is_hint, hint_count, answer, score, created_at"

// BeforeCreateFunc runs inside the create transaction after the card is loaded and before anything is written.
// It may change the attempt and the card's mastery.
type BeforeCreateFunc func(a *Attempt, c *card.Card) error

// AttemptRepository defines operations for storing attempts.
type AttemptRepository interface {
	Create(ctx context.Context, a *Attempt, beforeCreate BeforeCreateFunc) error
	FindByID(ctx context.Context, userID, id int64) (*Attempt, error)
	UpdateAnswer(ctx context.Context, userID, id int64, answer string) (*Attempt, error)
	FindSince(ctx context.Context, userID int64, since time.Time) ([]Attempt, error)
}

// DBAttemptRepository implements AttemptRepository on top of sqlx.
type DBAttemptRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBAttemptRepository creates a new DBAttemptRepository.
func NewDBAttemptRepository(db *sqlx.DB) *DBAttemptRepository {
	return &DBAttemptRepository{db: db, now: time.Now}
}

// Create stores a new attempt and the resulting card mastery in one transaction.
func (r *DBAttemptRepository) Create(ctx context.Context, a *Attempt, beforeCreate BeforeCreateFunc) error {
	if a.IsPersisted() {
		return fmt.Errorf("attempt %d is already stored", a.ID)
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		c, err := card.FindByIDForUpdate(ctx, tx, a.UserID, a.CardID)
		if err != nil {
			return fmt.Errorf("card.FindByIDForUpdate(%d) > %w", a.CardID, err)
		}
		if beforeCreate != nil {
			if err := beforeCreate(a, c); err != nil {
				return err
			}
		}
		if err := card.SaveMastery(ctx, tx, c); err != nil {
			return fmt.Errorf("card.SaveMastery(%d) > %w", c.ID, err)
		}

		if a.CreatedAt.IsZero() {
			a.CreatedAt = r.now().UTC()
		}
		id, err := database.InsertReturningID(ctx, tx,
			`INSERT INTO attempts (user_id, card_id, form, is_correct, is_hint, hint_count, answer, score, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.UserID, a.CardID, string(a.Form), a.IsCorrect, a.IsHint, a.HintCount, a.AnswerText, a.Score, a.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert attempt > %w", err)
		}
		a.ID = id
		return nil
	})
}

// FindByID returns the user's attempt, or ErrNotFound.
func (r *DBAttemptRepository) FindByID(ctx context.Context, userID, id int64) (*Attempt, error) {
	var a Attempt
	err := r.db.GetContext(ctx, &a,
		r.db.Rebind("SELECT "+attemptColumns+" FROM attempts WHERE id = ? AND user_id = ?"),
		id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(attempt) > %w", err)
	}
	return &a, nil
}

// UpdateAnswer changes only the stored answer text. Score and card mastery stay as they were.
func (r *DBAttemptRepository) UpdateAnswer(ctx context.Context, userID, id int64, answer string) (*Attempt, error) {
	a, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		r.db.Rebind("UPDATE attempts SET answer = ? WHERE id = ? AND user_id = ?"),
		answer, id, userID); err != nil {
		return nil, fmt.Errorf("db.ExecContext(update attempt answer) > %w", err)
	}
	a.AnswerText = answer
	return a, nil
}

// FindSince returns the user's attempts created at or after since, oldest first.
func (r *DBAttemptRepository) FindSince(ctx context.Context, userID int64, since time.Time) ([]Attempt, error) {
	attempts := []Attempt{}
	if err := r.db.SelectContext(ctx, &attempts,
		r.db.Rebind("SELECT "+attemptColumns+" FROM attempts WHERE user_id = ? AND created_at >= ? ORDER BY created_at"),
		userID, since); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempts since) > %w", err)
	}
	return attempts, nil
}
