package sqlite

// taskRow mirrors a row of the tasks table. Dates are stored as text
// and converted at the scanning boundary.
type taskRow struct {
	ID        int64
	Name      string
	DueDate   string
	Priority  string
	Completed int64
	CreatedAt string
}
