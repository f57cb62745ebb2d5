package models

import "strconv"

// Fixed marks per subject and the placeholder shown for missing scores.
const (
	MaxMarksPerSubject = 100
	MinMarksPerSubject = 35
	NotAvailable       = "NA"
)

// ReportColumns are the headers of the progress card table in display order.
var ReportColumns = []string{
	"Subject",
	"Max Marks",
	"Min Marks",
	"First Midterm",
	"Quarterly",
	"Second Midterm",
	"Third Midterm",
	"Half Yearly",
	"Annual",
	"Remarks",
}

// TrailerLabels are the rows printed after the totals, left blank for hand-written entries.
var TrailerLabels = []string{
	"Attendance",
	"Class Teacher's Signature",
	"Principal's Signature",
	"Parent's/Guardian's Sign",
}

// Score is an optional exam score. A zero Score means no mark row exists for the exam.
type Score struct {
	Value   int
	Present bool
}

// ScoreOf returns a present score.
func ScoreOf(v int) Score {
	return Score{Value: v, Present: true}
}

// String renders the score or NA.
func (s Score) String() string {
	if !s.Present {
		return NotAvailable
	}
	return strconv.Itoa(s.Value)
}

// SubjectScores is one subject row of the progress card.
type SubjectScores struct {
	Name          string
	Color         string
	FirstMidterm  Score
	Quarterly     Score
	SecondMidterm Score
}

// Totals sums the subject rows. Exam columns only add present scores.
type Totals struct {
	Color         string
	MaxMarks      int
	MinMarks      int
	FirstMidterm  int
	Quarterly     int
	SecondMidterm int
}

// TrailerRow is a blank row at the bottom of the card.
type TrailerRow struct {
	Label string
	Color string
}

// ProgressCard is the assembled report for one student.
type ProgressCard struct {
	RegisterNo  string
	StudentName string
	ClassName   string
	SectionName string
	Subjects    []SubjectScores
	Totals      Totals
	Trailers    []TrailerRow
}

// ReportRow is a rendered table row: a label cell followed by len(ReportColumns)-1 cells.
type ReportRow struct {
	Label string
	Color string
	Cells []string
}

// Rows flattens the card into display rows: subjects, totals, then trailers.
func (p *ProgressCard) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(p.Subjects)+1+len(p.Trailers))
	for _, s := range p.Subjects {
		rows = append(rows, ReportRow{
			Label: s.Name,
			Color: s.Color,
			Cells: []string{
				strconv.Itoa(MaxMarksPerSubject),
				strconv.Itoa(MinMarksPerSubject),
				s.FirstMidterm.String(),
				s.Quarterly.String(),
				s.SecondMidterm.String(),
				NotAvailable,
				NotAvailable,
				NotAvailable,
				"",
			},
		})
	}
	rows = append(rows, ReportRow{
		Label: "Total",
		Color: p.Totals.Color,
		Cells: []string{
			strconv.Itoa(p.Totals.MaxMarks),
			strconv.Itoa(p.Totals.MinMarks),
			strconv.Itoa(p.Totals.FirstMidterm),
			strconv.Itoa(p.Totals.Quarterly),
			strconv.Itoa(p.Totals.SecondMidterm),
			NotAvailable,
			NotAvailable,
			NotAvailable,
			"",
		},
	})
	for _, t := range p.Trailers {
		rows = append(rows, ReportRow{Label: t.Label, Color: t.Color, Cells: make([]string, len(ReportColumns)-1)})
	}
	return rows
}
