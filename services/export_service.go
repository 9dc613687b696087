// file: services/export_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"codefest/models"

	"github.com/jung-kurt/gofpdf"
)

// StudentsCSV renders every registration as one CSV row. Students must be
// loaded with their Contest association.
func StudentsCSV(students []models.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Name", "Email", "College", "Branch", "Graduation Year", "Status", "Test Link", "Score", "Contest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, s := range students {
		gradYear, testLink, score, contestName := "", "", "", ""
		if s.GraduationYear != nil {
			gradYear = strconv.Itoa(*s.GraduationYear)
		}
		if s.TestLink != nil {
			testLink = *s.TestLink
		}
		if s.Score != nil {
			score = strconv.Itoa(*s.Score)
		}
		if s.Contest != nil {
			contestName = s.Contest.Name
		}
		row := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Name, s.Email, s.College, s.Branch,
			gradYear, string(s.Status), testLink, score, contestName,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Score report table columns, widths in mm.
var pdfColumns = []struct {
	Name  string
	Width float64
}{
	{"Rank", 15},
	{"Name", 50},
	{"Email", 65},
	{"Branch", 25},
	{"Score", 20},
}

// ScoreReportPDF renders the leaderboard PDF. Callers pass students already
// ordered by score descending; rank is the row position.
func ScoreReportPDF(students []models.Student) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.CellFormat(0, 10, "CodeFest - Student Score Report", "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Student Score Leaderboard", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	_, unitSize := pdf.GetFontSize()
	lineHeight := unitSize * 2
	for _, col := range pdfColumns {
		pdf.CellFormat(col.Width, lineHeight, col.Name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 10)
	for i, s := range students {
		score := ""
		if s.Score != nil {
			score = strconv.Itoa(*s.Score)
		}
		cells := []string{strconv.Itoa(i + 1), s.Name, s.Email, s.Branch, score}
		for j, cell := range cells {
			pdf.CellFormat(pdfColumns[j].Width, lineHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(lineHeight)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
