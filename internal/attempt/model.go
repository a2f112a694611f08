// Package attempt provides answer attempts and their persistence.
package attempt

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an attempt does not exist for the user.
var ErrNotFound = errors.New("attempt not found")

// Form is the way a card is asked in a lesson.
type Form string

const (
	FormListen Form = "listen"
	FormWrite  Form = "write"
	FormSpeak  Form = "speak"
)

// AllForms lists every form in a stable order.
var AllForms = []Form{FormListen, FormWrite, FormSpeak}

func ParseForm(s string) (Form, error) {
	for _, f := range AllForms {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown form %q", s)
}

// Attempt is one answer a user submitted for a card.
type Attempt struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"-"`
	CardID     int64     `db:"card_id" json:"card"`
	Form       Form      `db:"form" json:"form"`
	IsCorrect  bool      `db:"is_correct" json:"is_correct"`
	IsHint     bool      `db:"is_hint" json:"is_hint"`
	HintCount  int       `db:"hint_count" json:"hints_count"`
	AnswerText string    `db:"answer" json:"answer"`
	Score      int       `db:"score" json:"score"`
	CreatedAt  time.Time `db:"created_at" json:"created"`
}

// IsPersisted reports whether the attempt has been stored already.
func (a Attempt) IsPersisted() bool {
	return a.ID != 0
}
