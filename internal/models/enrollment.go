package models

// Enrollment links a student to their current class and section. One row per student.
type Enrollment struct {
	StudentID int64 `json:"student_id"`
	ClassID   int64 `json:"class_id"`
	SectionID int64 `json:"section_id"`
}
