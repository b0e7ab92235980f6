package pdfgen

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// LoanRow is one line of the printable loan table.
type LoanRow struct {
	PersonName    string
	ResourceTitle string
	LoanDate      time.Time
	DueDate       *time.Time
	Status        string
}

// SummaryLine is one label/value pair in the report header block.
type SummaryLine struct {
	Label string
	Value int64
}

// LoanReport is everything needed to render the PDF. LogoPath is
// optional; an absent or unreadable file is skipped silently so a
// misconfigured logo never breaks report downloads.
type LoanReport struct {
	Title       string
	GeneratedAt time.Time
	LogoPath    string
	Summary     []SummaryLine
	Rows        []LoanRow
}

const dateLayout = "2006-01-02"

// RenderLoanReport builds the PDF document and returns its bytes.
func RenderLoanReport(r *LoanReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	if r.LogoPath != "" {
		if _, err := os.Stat(r.LogoPath); err == nil {
			pdf.ImageOptions(r.LogoPath, 10, 10, 25, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, r.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated at "+r.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(r.Summary) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range r.Summary {
			pdf.CellFormat(60, 6, line.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, fmt.Sprintf("%d", line.Value), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	renderTable(pdf, r.GeneratedAt, r.Rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfgen: render loan report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTable(pdf *gofpdf.Fpdf, generatedAt time.Time, rows []LoanRow) {
	widths := []float64{50, 55, 22, 22, 15, 26}
	headers := []string{"Person", "Resource", "Loan date", "Due date", "Days", "Status"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(190, 7, "No loans match the selected filters", "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range rows {
		due := "-"
		if row.DueDate != nil {
			due = row.DueDate.Format(dateLayout)
		}
		cells := []string{
			row.PersonName,
			row.ResourceTitle,
			row.LoanDate.Format(dateLayout),
			due,
			daysUntilDue(row.DueDate, generatedAt),
			row.Status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, truncate(c, 38), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// daysUntilDue renders the calendar days between the report date and
// the due date. Negative means the loan is already overdue.
func daysUntilDue(due *time.Time, ref time.Time) string {
	if due == nil {
		return "-"
	}
	diff := truncateToDay(*due).Sub(truncateToDay(ref)).Hours() / 24
	return fmt.Sprintf("%d", int(diff))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// truncate keeps table cells from overflowing their column. Operates
// on runes so multibyte text is never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
