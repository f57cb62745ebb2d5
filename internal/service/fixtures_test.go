package service

import (
	"context"

	"github.com/noah-isme/progress-card/internal/models"
)

type fakeRecords struct {
	classes     []models.Class
	sections    []models.Section
	students    []models.Student
	enrollments []models.Enrollment
	subjects    []models.Subject
	marks       []models.Mark
	errs        map[models.TableName]error
}

func (f *fakeRecords) err(table models.TableName) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[table]
}

func (f *fakeRecords) Classes(ctx context.Context) ([]models.Class, error) {
	return f.classes, f.err(models.TableClass)
}

func (f *fakeRecords) Sections(ctx context.Context) ([]models.Section, error) {
	return f.sections, f.err(models.TableSection)
}

func (f *fakeRecords) Students(ctx context.Context) ([]models.Student, error) {
	return f.students, f.err(models.TableStudent)
}

func (f *fakeRecords) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	return f.enrollments, f.err(models.TableEnrollment)
}

func (f *fakeRecords) Subjects(ctx context.Context) ([]models.Subject, error) {
	return f.subjects, f.err(models.TableSubject)
}

func (f *fakeRecords) Marks(ctx context.Context) ([]models.Mark, error) {
	return f.marks, f.err(models.TableMark)
}

// schoolRecords is a small school: S100 in class 5 section 2 with two mathematics marks.
func schoolRecords() *fakeRecords {
	return &fakeRecords{
		classes:  []models.Class{{ID: 5, Name: "Fifth"}, {ID: 6, Name: "Sixth"}},
		sections: []models.Section{{ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
		students: []models.Student{
			{ID: 1, RegisterNo: "S100", FirstName: "Asha", LastName: "Kumar"},
			{ID: 2, RegisterNo: "S101", FirstName: "Ravi", LastName: "Iyer"},
			{ID: 3, RegisterNo: "S102", FirstName: "Mina", LastName: "Das"},
		},
		enrollments: []models.Enrollment{
			{StudentID: 1, ClassID: 5, SectionID: 2},
			{StudentID: 2, ClassID: 6, SectionID: 3},
			{StudentID: 3, ClassID: 5, SectionID: 2},
		},
		subjects: []models.Subject{{ID: 10, Name: "MATHEMATICS"}, {ID: 11, Name: "SCIENCE"}},
		marks: []models.Mark{
			{StudentID: 1, SubjectID: 10, ExamID: models.ExamFirstMidterm, Payload: `{"1": 88}`},
			{StudentID: 1, SubjectID: 10, ExamID: models.ExamQuarterly, Payload: `{"1": 91}`},
			{StudentID: 2, SubjectID: 11, ExamID: models.ExamFirstMidterm, Payload: `{"1": 70}`},
		},
	}
}

func fixedPalette() Palette {
	return func() string { return "b4b4b4" }
}
