package lesson

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/card"
)

// DefaultCompleteLTE bounds new cards to those not fully learned.
const DefaultCompleteLTE = 99

// Criteria narrows the cards of one lesson. Only UserID is required.
type Criteria struct {
	UserID           int64
	IsLatestOnly     bool
	IncludeSpeakForm bool
	DeckID           int64
	Category         card.Category
	CompleteGTE      *int
	CompleteLTE      *int
	Ordering         card.Ordering
}

// CriteriaFromValues reads criteria from lesson query parameters.
// Unknown orderings are dropped; malformed numbers and booleans are validation errors.
func CriteriaFromValues(userID int64, values url.Values) (Criteria, error) {
	c := Criteria{UserID: userID}

	var err error
	if c.IsLatestOnly, err = parseBool(values, "is_latest"); err != nil {
		return Criteria{}, err
	}
	if c.IncludeSpeakForm, err = parseBool(values, "speak"); err != nil {
		return Criteria{}, err
	}
	if v := values.Get("deck"); v != "" {
		if c.DeckID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Criteria{}, fmt.Errorf("%w: deck must be an integer: %q", ErrValidation, v)
		}
	}
	if v := values.Get("category"); v != "" {
		if c.Category, err = card.ParseCategory(v); err != nil {
			return Criteria{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if c.CompleteGTE, err = parseIntPtr(values, "complete__gte"); err != nil {
		return Criteria{}, err
	}
	if c.CompleteLTE, err = parseIntPtr(values, "complete__lte"); err != nil {
		return Criteria{}, err
	}
	if ordering, ok := card.ParseOrdering(values.Get("ordering")); ok {
		c.Ordering = ordering
	}
	return c, nil
}

// Values encodes c back into query parameters. UserID is not included.
func (c Criteria) Values() url.Values {
	values := url.Values{}
	if c.IsLatestOnly {
		values.Set("is_latest", "1")
	}
	if c.IncludeSpeakForm {
		values.Set("speak", "1")
	}
	if c.DeckID != 0 {
		values.Set("deck", strconv.FormatInt(c.DeckID, 10))
	}
	if c.Category != "" {
		values.Set("category", string(c.Category))
	}
	if c.CompleteGTE != nil {
		values.Set("complete__gte", strconv.Itoa(*c.CompleteGTE))
	}
	if c.CompleteLTE != nil {
		values.Set("complete__lte", strconv.Itoa(*c.CompleteLTE))
	}
	if !c.Ordering.IsZero() {
		values.Set("ordering", c.Ordering.String())
	}
	return values
}

// Forms returns the forms a lesson item may be asked in.
func (c Criteria) Forms() []attempt.Form {
	if c.IncludeSpeakForm {
		return []attempt.Form{attempt.FormListen, attempt.FormWrite, attempt.FormSpeak}
	}
	return []attempt.Form{attempt.FormListen, attempt.FormWrite}
}

// masteryBounds applies the defaults: a zero or missing upper bound means 99, a zero lower bound means none.
func (c Criteria) masteryBounds() (lte int, gte *int) {
	lte = DefaultCompleteLTE
	if c.CompleteLTE != nil && *c.CompleteLTE != 0 {
		lte = *c.CompleteLTE
	}
	if c.CompleteGTE != nil && *c.CompleteGTE != 0 {
		v := *c.CompleteGTE
		gte = &v
	}
	return lte, gte
}

func parseBool(values url.Values, key string) (bool, error) {
	v := values.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %q", ErrValidation, key, v)
	}
	return b, nil
}

func parseIntPtr(values url.Values, key string) (*int, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer: %q", ErrValidation, key, v)
	}
	return &n, nil
}
