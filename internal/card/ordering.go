package card

import "strings"

// Ordering is a validated sort key for new-card queries.
// The zero value means no ordering, which the repository turns into random order.
type Ordering struct {
	Field      string
	Descending bool
}

var orderingColumns = map[string]string{
	"complete": "mastery",
	"priority": "priority",
	"created":  "created_at",
}

// ParseOrdering accepts complete, priority and created, optionally prefixed with "-".
// Anything else yields the zero Ordering and false.
func ParseOrdering(s string) (Ordering, bool) {
	s = strings.TrimSpace(s)
	desc := strings.HasPrefix(s, "-")
	field := strings.TrimPrefix(s, "-")
	if _, ok := orderingColumns[field]; !ok {
		return Ordering{}, false
	}
	return Ordering{Field: field, Descending: desc}, true
}

func (o Ordering) IsZero() bool {
	return o.Field == ""
}

func (o Ordering) String() string {
	if o.IsZero() {
		return ""
	}
	if o.Descending {
		return "-" + o.Field
	}
	return o.Field
}

// orderByClause returns the ORDER BY expression for o, using randomFunc when o is zero.
func (o Ordering) orderByClause(randomFunc string) string {
	column, ok := orderingColumns[o.Field]
	if !ok {
		return randomFunc
	}
	if o.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}
