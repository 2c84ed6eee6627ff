package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
)

var csvHeader = []string{"ID", "Name", "Due Date", "Priority", "Completed", "Created At"}

// WriteCSV writes the tasks as CSV with a header row
func WriteCSV(w io.Writer, tasks []*domain.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return errors.NewPersistenceError("write csv header", err)
	}

	for _, task := range tasks {
		createdAt := ""
		if !task.CreatedAt.IsZero() {
			createdAt = task.CreatedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Name,
			task.DueDate.Format(domain.DateFormat),
			string(task.Priority),
			strconv.FormatBool(task.Completed),
			createdAt,
		}
		if err := cw.Write(record); err != nil {
			return errors.NewPersistenceError("write csv record", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewPersistenceError("flush csv", err)
	}
	return nil
}
