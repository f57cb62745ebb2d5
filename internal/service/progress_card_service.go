package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/progress-card/internal/models"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
)

type recordReader interface {
	Classes(ctx context.Context) ([]models.Class, error)
	Sections(ctx context.Context) ([]models.Section, error)
	Students(ctx context.Context) ([]models.Student, error)
	Enrollments(ctx context.Context) ([]models.Enrollment, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
	Marks(ctx context.Context) ([]models.Mark, error)
}

// Client-facing messages for missing report inputs.
const (
	msgStudentNotFound    = "Student not found"
	msgEnrollmentNotFound = "Enrollment data not found for the student"
	msgMarksNotFound      = "Marks not found for the student"
	msgTablesNotFound     = "Class, marks, or subjects table not found"
)

type subjectExam struct {
	subjectID int64
	exam      models.ExamTerm
}

// ProgressCardService joins the record tables into a student's progress card.
type ProgressCardService struct {
	records recordReader
	palette Palette
	logger  *zap.Logger
}

// NewProgressCardService constructs the service. A nil palette uses PastelPalette.
func NewProgressCardService(records recordReader, palette Palette, logger *zap.Logger) *ProgressCardService {
	if palette == nil {
		palette = PastelPalette()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressCardService{records: records, palette: palette, logger: logger}
}

// Build assembles the progress card of the student with the given register number.
func (s *ProgressCardService) Build(ctx context.Context, registerNo string) (*models.ProgressCard, error) {
	registerNo = strings.TrimSpace(registerNo)

	students, err := s.records.Students(ctx)
	if err != nil {
		return nil, err
	}
	student, ok := findStudent(students, registerNo)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgStudentNotFound)
	}

	enrollments, err := s.records.Enrollments(ctx)
	if err != nil {
		return nil, err
	}
	enrollment, ok := findEnrollment(enrollments, student.ID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgEnrollmentNotFound)
	}

	classes, err := s.records.Classes(ctx)
	if err != nil {
		return nil, tablesError(err)
	}
	marks, err := s.records.Marks(ctx)
	if err != nil {
		return nil, tablesError(err)
	}
	subjects, err := s.records.Subjects(ctx)
	if err != nil {
		return nil, tablesError(err)
	}
	sectionName, err := s.sectionName(ctx, enrollment.SectionID)
	if err != nil {
		return nil, err
	}

	studentMarks := marksOf(marks, student.ID)
	if len(studentMarks) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgMarksNotFound)
	}

	card := &models.ProgressCard{
		RegisterNo:  student.RegisterNo,
		StudentName: student.FullName(),
		ClassName:   className(classes, enrollment.ClassID),
		SectionName: sectionName,
	}
	card.Subjects = s.subjectRows(studentMarks, subjects)
	card.Totals = s.totals(card.Subjects)
	for _, label := range models.TrailerLabels {
		card.Trailers = append(card.Trailers, models.TrailerRow{Label: label, Color: s.palette()})
	}

	s.logger.Debug("progress card assembled",
		zap.String("register_no", card.RegisterNo),
		zap.Int64("class_id", enrollment.ClassID),
		zap.String("class_name", card.ClassName),
		zap.Int("subjects", len(card.Subjects)),
	)
	return card, nil
}

// subjectRows keeps one row per subject in first-seen order. For every (subject, exam)
// pair the first mark row wins.
func (s *ProgressCardService) subjectRows(marks []models.Mark, subjects []models.Subject) []models.SubjectScores {
	byID := make(map[int64]models.Subject, len(subjects))
	for _, subject := range subjects {
		if _, exists := byID[subject.ID]; !exists {
			byID[subject.ID] = subject
		}
	}

	scores := make(map[subjectExam]models.Score)
	var order []int64
	seen := make(map[int64]bool)
	for _, mark := range marks {
		if _, known := byID[mark.SubjectID]; !known {
			continue
		}
		if !seen[mark.SubjectID] {
			seen[mark.SubjectID] = true
			order = append(order, mark.SubjectID)
		}
		key := subjectExam{subjectID: mark.SubjectID, exam: mark.ExamID}
		if _, exists := scores[key]; !exists {
			scores[key] = models.ScoreOf(ExtractMark(mark.Payload))
		}
	}

	rows := make([]models.SubjectScores, 0, len(order))
	for _, id := range order {
		rows = append(rows, models.SubjectScores{
			Name:          FormatSubjectName(byID[id].Name),
			Color:         s.palette(),
			FirstMidterm:  scores[subjectExam{id, models.ExamFirstMidterm}],
			Quarterly:     scores[subjectExam{id, models.ExamQuarterly}],
			SecondMidterm: scores[subjectExam{id, models.ExamSecondMidterm}],
		})
	}
	return rows
}

func (s *ProgressCardService) totals(rows []models.SubjectScores) models.Totals {
	totals := models.Totals{
		Color:    s.palette(),
		MaxMarks: len(rows) * models.MaxMarksPerSubject,
		MinMarks: len(rows) * models.MinMarksPerSubject,
	}
	for _, row := range rows {
		totals.FirstMidterm += valueOf(row.FirstMidterm)
		totals.Quarterly += valueOf(row.Quarterly)
		totals.SecondMidterm += valueOf(row.SecondMidterm)
	}
	return totals
}

// sectionName resolves the section softly: a missing row or table yields NA.
func (s *ProgressCardService) sectionName(ctx context.Context, sectionID int64) (string, error) {
	sections, err := s.records.Sections(ctx)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return models.NotAvailable, nil
		}
		return "", err
	}
	for _, section := range sections {
		if section.ID == sectionID {
			return section.Name, nil
		}
	}
	return models.NotAvailable, nil
}

func valueOf(score models.Score) int {
	if !score.Present {
		return 0
	}
	return score.Value
}

func tablesError(err error) error {
	if appErrors.IsNotFound(err) {
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, msgTablesNotFound)
	}
	return err
}

func findStudent(students []models.Student, registerNo string) (models.Student, bool) {
	for _, student := range students {
		if student.RegisterNo == registerNo {
			return student, true
		}
	}
	return models.Student{}, false
}

func findEnrollment(enrollments []models.Enrollment, studentID int64) (models.Enrollment, bool) {
	for _, enrollment := range enrollments {
		if enrollment.StudentID == studentID {
			return enrollment, true
		}
	}
	return models.Enrollment{}, false
}

func className(classes []models.Class, classID int64) string {
	for _, class := range classes {
		if class.ID == classID {
			return class.Name
		}
	}
	return models.NotAvailable
}

func marksOf(marks []models.Mark, studentID int64) []models.Mark {
	var result []models.Mark
	for _, mark := range marks {
		if mark.StudentID == studentID {
			result = append(result, mark)
		}
	}
	return result
}
