package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"pms/internal/domain/performance"
)

type HistoryDocument struct {
	Title        string
	EmployeeName string
	GeneratedAt  time.Time
	Entries      []performance.HistoryEntry
}

// RenderHistoryPDF writes one section per goal with its tasks and feedback.
func RenderHistoryPDF(w io.Writer, doc HistoryDocument) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Employee: %s", doc.EmployeeName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", doc.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	if len(doc.Entries) == 0 {
		pdf.Cell(0, 8, "No performance history found.")
		pdf.Ln(8)
	}

	for _, entry := range doc.Entries {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(entry.GoalDescription), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Due %s  |  Status: %s  |  Assigned by %s",
			entry.DueDate.Format("2006-01-02"), entry.GoalStatus, entry.ManagerName)))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Tasks (%d approved of %d)", entry.ApprovedTasks(), len(entry.Tasks)))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		if len(entry.Tasks) == 0 {
			pdf.Cell(0, 6, "  none")
			pdf.Ln(6)
		}
		for _, task := range entry.Tasks {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("  - %s [%s]", task.Description, task.Status)), "", "L", false)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "Feedback")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		if len(entry.Feedback) == 0 {
			pdf.Cell(0, 6, "  none")
			pdf.Ln(6)
		}
		for _, item := range entry.Feedback {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("  %s, %s: %s",
				item.ManagerName, item.CreatedAt.Format("2006-01-02"), item.Text)), "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
