package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasktrack/internal/domain"
	"tasktrack/internal/errors"
)

// WritePDF renders the tasks as a simple one-column PDF listing. The
// today argument controls which tasks are marked overdue.
func WritePDF(w io.Writer, tasks []*domain.Task, today time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for _, task := range tasks {
		status := "open"
		if task.Completed {
			status = "done"
		} else if task.IsOverdue(today) {
			status = "OVERDUE"
		}
		line := fmt.Sprintf("#%d %s  due %s  priority %s  [%s]",
			task.ID, task.Name, task.DueDate.Format(domain.DateFormat), task.Priority, status)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks.", "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return errors.NewPersistenceError("render pdf", err)
	}
	return nil
}
