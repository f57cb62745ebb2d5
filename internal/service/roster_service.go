package service

import (
	"context"
	"strconv"

	"github.com/noah-isme/progress-card/internal/models"
	"github.com/noah-isme/progress-card/pkg/export"
)

var rosterHeaders = []string{"No", "Register No", "First Name", "Last Name"}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// RosterService answers the picker page: class/section options and section rosters.
type RosterService struct {
	records recordReader
	csv     csvRenderer
}

// NewRosterService constructs a roster service.
func NewRosterService(records recordReader, csv csvRenderer) *RosterService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &RosterService{records: records, csv: csv}
}

// PickerOptions lists the classes and sections offered on the landing page.
func (s *RosterService) PickerOptions(ctx context.Context) (*models.PickerOptions, error) {
	classes, err := s.records.Classes(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.records.Sections(ctx)
	if err != nil {
		return nil, err
	}

	opts := &models.PickerOptions{
		Classes:  make([]models.Option, 0, len(classes)),
		Sections: make([]models.Option, 0, len(sections)),
	}
	for _, class := range classes {
		opts.Classes = append(opts.Classes, models.Option{Value: class.ID, Name: class.Name})
	}
	for _, section := range sections {
		opts.Sections = append(opts.Sections, models.Option{Value: section.ID, Name: section.Name})
	}
	return opts, nil
}

// ListStudents returns the students enrolled in the class and section, in enrollment order.
func (s *RosterService) ListStudents(ctx context.Context, classID, sectionID int64) ([]models.Student, error) {
	enrollments, err := s.records.Enrollments(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.records.Students(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Student, len(students))
	for _, student := range students {
		if _, exists := byID[student.ID]; !exists {
			byID[student.ID] = student
		}
	}

	result := make([]models.Student, 0)
	for _, enrollment := range enrollments {
		if enrollment.ClassID != classID || enrollment.SectionID != sectionID {
			continue
		}
		if student, ok := byID[enrollment.StudentID]; ok {
			result = append(result, student)
		}
	}
	return result, nil
}

// RosterCSV renders ListStudents as CSV.
func (s *RosterService) RosterCSV(ctx context.Context, classID, sectionID int64) ([]byte, error) {
	students, err := s.ListStudents(ctx, classID, sectionID)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{Headers: rosterHeaders, Rows: make([][]string, 0, len(students))}
	for i, student := range students {
		data.Rows = append(data.Rows, []string{strconv.Itoa(i + 1), student.RegisterNo, student.FirstName, student.LastName})
	}
	return s.csv.Render(data)
}
