package domain

import "time"

// DateFilter narrows a query to a due-date window relative to "today".
type DateFilter string

const (
	DateFilterAll      DateFilter = "all"
	DateFilterToday    DateFilter = "today"
	DateFilterThisWeek DateFilter = "this-week"
	DateFilterOverdue  DateFilter = "overdue"
)

// ParseDateFilter parses a date filter value, returning false if the value
// is not recognized. An empty string parses as DateFilterAll.
func ParseDateFilter(s string) (DateFilter, bool) {
	switch DateFilter(s) {
	case DateFilterAll, DateFilterToday, DateFilterThisWeek, DateFilterOverdue:
		return DateFilter(s), true
	case "":
		return DateFilterAll, true
	default:
		return "", false
	}
}

// QueryOptions represents optional filters for a task query.
// A nil Priority means no priority filter; a zero Date means no date
// filter. Results are always ordered by due date ascending with priority
// rank as the tie-break.
type QueryOptions struct {
	Priority         *Priority
	Date             DateFilter
	IncludeCompleted bool
}

// UpdateFields is a field mask for partial task updates. Nil fields are
// left unchanged.
type UpdateFields struct {
	Name      *string
	DueDate   *time.Time
	Priority  *Priority
	Completed *bool
}

// IsEmpty reports whether no fields are set.
func (f UpdateFields) IsEmpty() bool {
	return f.Name == nil && f.DueDate == nil && f.Priority == nil && f.Completed == nil
}
