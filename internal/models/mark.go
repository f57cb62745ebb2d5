package models

import "strconv"

// ExamTerm identifies an exam by its numeric code.
type ExamTerm int64

// Known exam codes.
const (
	ExamFirstMidterm  ExamTerm = 1
	ExamSecondMidterm ExamTerm = 2
	ExamQuarterly     ExamTerm = 4
)

// Label returns the display name of the exam term.
func (e ExamTerm) Label() string {
	switch e {
	case ExamFirstMidterm:
		return "First Midterm"
	case ExamSecondMidterm:
		return "Second Midterm"
	case ExamQuarterly:
		return "Quarterly"
	default:
		return "Exam " + strconv.FormatInt(int64(e), 10)
	}
}

// Mark is a row of the mark table. Payload is JSON text whose field "1" holds the score;
// it is empty when the stored value is absent or not text.
type Mark struct {
	StudentID int64    `json:"student_id"`
	SubjectID int64    `json:"subject_id"`
	ExamID    ExamTerm `json:"exam_id"`
	Payload   string   `json:"mark"`
}
