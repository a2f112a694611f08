package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/nativecards/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/card/mock_repository.go -package=mock_card

const cardColumns = "id, user_id, deck_id, word, category, priority, mastery, definition, translation, created_at, updated_at"

// batchSize bounds rows per statement to stay under driver placeholder limits.
const batchSize = 100

var insertColumns = []string{"user_id", "deck_id", "word", "category", "priority", "mastery", "definition", "translation"}

// NewCardFilter selects the cards a lesson introduces or reviews.
type NewCardFilter struct {
	UserID       int64
	MasteryLTE   int
	MasteryGTE   *int
	DeckID       int64
	Category     Category
	CreatedSince *time.Time
	Ordering     Ordering
	Limit        int
}

// CardRepository defines operations for reading and writing cards.
type CardRepository interface {
	FindNewCards(ctx context.Context, filter NewCardFilter) ([]Card, error)
	FindLearnedCards(ctx context.Context, userID int64, limit int) ([]Card, error)
	RandomWords(ctx context.Context, userID int64, limit int) ([]string, error)
	FindByID(ctx context.Context, userID, id int64) (*Card, error)
	ExistingWords(ctx context.Context, userID int64, words []string) (map[string]bool, error)
	BatchCreate(ctx context.Context, cards []Card) error
	Count(ctx context.Context, userID int64) (Counts, error)
}

// DBCardRepository implements CardRepository on top of sqlx.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// FindNewCards returns at most filter.Limit cards whose mastery is below the filter's upper bound.
// Without an ordering the cards come back in random order.
func (r *DBCardRepository) FindNewCards(ctx context.Context, filter NewCardFilter) ([]Card, error) {
	if filter.Limit <= 0 {
		return []Card{}, nil
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + cardColumns + " FROM cards WHERE user_id = ? AND mastery <= ?")
	args := []interface{}{filter.UserID, filter.MasteryLTE}
	if filter.MasteryGTE != nil {
		sb.WriteString(" AND mastery >= ?")
		args = append(args, *filter.MasteryGTE)
	}
	if filter.DeckID != 0 {
		sb.WriteString(" AND deck_id = ?")
		args = append(args, filter.DeckID)
	}
	if filter.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.CreatedSince != nil {
		sb.WriteString(" AND created_at >= ?")
		args = append(args, *filter.CreatedSince)
	}
	sb.WriteString(" ORDER BY " + filter.Ordering.orderByClause(database.RandomFunc(r.db.DriverName())))
	sb.WriteString(" LIMIT ?")
	args = append(args, filter.Limit)

	cards := []Card{}
	if err := r.db.SelectContext(ctx, &cards, r.db.Rebind(sb.String()), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(new cards) > %w", err)
	}
	return cards, nil
}

// FindLearnedCards returns up to limit fully mastered cards in random order.
func (r *DBCardRepository) FindLearnedCards(ctx context.Context, userID int64, limit int) ([]Card, error) {
	if limit <= 0 {
		return []Card{}, nil
	}

	query := "SELECT " + cardColumns + " FROM cards WHERE user_id = ? AND mastery = ? ORDER BY " +
		database.RandomFunc(r.db.DriverName()) + " LIMIT ?"
	cards := []Card{}
	if err := r.db.SelectContext(ctx, &cards, r.db.Rebind(query), userID, MaxMastery, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learned cards) > %w", err)
	}
	return cards, nil
}

// RandomWords returns up to limit distinct words of the user in random order.
func (r *DBCardRepository) RandomWords(ctx context.Context, userID int64, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	query := "SELECT word FROM (SELECT DISTINCT word FROM cards WHERE user_id = ?) AS w ORDER BY " +
		database.RandomFunc(r.db.DriverName()) + " LIMIT ?"
	words := []string{}
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(query), userID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(random words) > %w", err)
	}
	return words, nil
}

// FindByID returns the user's card, or ErrNotFound.
func (r *DBCardRepository) FindByID(ctx context.Context, userID, id int64) (*Card, error) {
	var c Card
	err := r.db.GetContext(ctx, &c,
		r.db.Rebind("SELECT "+cardColumns+" FROM cards WHERE id = ? AND user_id = ?"),
		id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card) > %w", err)
	}
	return &c, nil
}

// ExistingWords reports which of words the user already has a card for.
func (r *DBCardRepository) ExistingWords(ctx context.Context, userID int64, words []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	for i := 0; i < len(words); i += batchSize {
		end := min(i+batchSize, len(words))

		query, args, err := sqlx.In("SELECT word FROM cards WHERE user_id = ? AND word IN (?)", userID, words[i:end])
		if err != nil {
			return nil, fmt.Errorf("sqlx.In(existing words) > %w", err)
		}
		var found []string
		if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("db.SelectContext(existing words) > %w", err)
		}
		for _, w := range found {
			existing[w] = true
		}
	}
	return existing, nil
}

// BatchCreate inserts cards in batches within one transaction. Mastery is clamped before writing.
func (r *DBCardRepository) BatchCreate(ctx context.Context, cards []Card) error {
	if len(cards) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for i := 0; i < len(cards); i += batchSize {
			batch := cards[i:min(i+batchSize, len(cards))]

			args := make([]interface{}, 0, len(batch)*len(insertColumns))
			for _, c := range batch {
				args = append(args, c.UserID, c.DeckID, c.Word, string(c.Category), int(c.Priority),
					ClampMastery(c.Mastery), c.Definition, c.Translation)
			}
			query := database.BuildMultiRowInsert("cards", insertColumns, len(batch))
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return fmt.Errorf("tx.ExecContext(insert cards) > %w", err)
			}
		}
		return nil
	})
}

// Count returns total, learned and unlearned card counts for the user.
func (r *DBCardRepository) Count(ctx context.Context, userID int64) (Counts, error) {
	var counts Counts
	err := r.db.GetContext(ctx, &counts, r.db.Rebind(
		`SELECT COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN mastery = ? THEN 1 ELSE 0 END), 0) AS learned
		FROM cards WHERE user_id = ?`),
		MaxMastery, userID)
	if err != nil {
		return Counts{}, fmt.Errorf("db.GetContext(card counts) > %w", err)
	}
	counts.Unlearned = counts.Total - counts.Learned
	return counts, nil
}

// FindByIDForUpdate loads the user's card inside tx, locking the row where the driver supports it.
func FindByIDForUpdate(ctx context.Context, tx *sqlx.Tx, userID, id int64) (*Card, error) {
	query := "SELECT " + cardColumns + " FROM cards WHERE id = ? AND user_id = ?"
	if tx.DriverName() != database.DriverSQLite {
		query += " FOR UPDATE"
	}

	var c Card
	err := tx.GetContext(ctx, &c, tx.Rebind(query), id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tx.GetContext(card) > %w", err)
	}
	return &c, nil
}

// SaveMastery writes the card's mastery inside tx, clamped to the valid range.
func SaveMastery(ctx context.Context, tx *sqlx.Tx, c *Card) error {
	c.Mastery = ClampMastery(c.Mastery)
	if _, err := tx.ExecContext(ctx,
		tx.Rebind("UPDATE cards SET mastery = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
		c.Mastery, c.ID); err != nil {
		return fmt.Errorf("tx.ExecContext(update card mastery) > %w", err)
	}
	return nil
}
