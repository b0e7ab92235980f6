package pdfgen

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportTime() time.Time {
	return time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)
}

func TestRenderLoanReportProducesPDF(t *testing.T) {
	due := reportTime().AddDate(0, 0, 7)
	report := &LoanReport{
		Title:       "School library loan report",
		GeneratedAt: reportTime(),
		Summary: []SummaryLine{
			{Label: "Active loans", Value: 12},
			{Label: "Overdue loans", Value: 3},
		},
		Rows: []LoanRow{
			{
				PersonName:    "Ana Torres",
				ResourceTitle: "Cien años de soledad",
				LoanDate:      reportTime(),
				DueDate:       &due,
				Status:        "active",
			},
			{
				PersonName:    "Carlos Ruiz",
				ResourceTitle: "El principito",
				LoanDate:      reportTime().AddDate(0, 0, -10),
				Status:        "overdue",
			},
		},
	}

	body, err := RenderLoanReport(report)

	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestRenderLoanReportEmptyTable(t *testing.T) {
	report := &LoanReport{
		Title:       "School library loan report",
		GeneratedAt: reportTime(),
	}

	body, err := RenderLoanReport(report)

	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestRenderLoanReportMissingLogoIsSkipped(t *testing.T) {
	report := &LoanReport{
		Title:       "School library loan report",
		GeneratedAt: reportTime(),
		LogoPath:    "/nonexistent/logo.png",
	}

	body, err := RenderLoanReport(report)

	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long cell value", 10))
}

func TestTruncateKeepsMultibyteRunesIntact(t *testing.T) {
	got := truncate("Cien años de soledad (edición conmemorativa)", 10)

	assert.Equal(t, "Cien añ...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestDaysUntilDue(t *testing.T) {
	ref := reportTime()

	future := ref.AddDate(0, 0, 5)
	past := ref.AddDate(0, 0, -3)
	sameDayLater := ref.Add(10 * time.Hour)

	assert.Equal(t, "5", daysUntilDue(&future, ref))
	assert.Equal(t, "-3", daysUntilDue(&past, ref))
	assert.Equal(t, "0", daysUntilDue(&sameDayLater, ref))
	assert.Equal(t, "-", daysUntilDue(nil, ref))
}
