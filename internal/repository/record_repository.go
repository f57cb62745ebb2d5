package repository

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/noah-isme/progress-card/internal/models"
)

type rowSource interface {
	Rows(ctx context.Context, name models.TableName) ([]bson.M, error)
}

// RecordRepository turns raw table rows into typed records. Rows that cannot be coerced
// or fail validation are dropped and logged.
type RecordRepository struct {
	tables   rowSource
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecordRepository constructs a record repository.
func NewRecordRepository(tables rowSource, validate *validator.Validate, logger *zap.Logger) *RecordRepository {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordRepository{tables: tables, validate: validate, logger: logger}
}

// Classes returns the class table.
func (r *RecordRepository) Classes(ctx context.Context) ([]models.Class, error) {
	return load(ctx, r, models.TableClass, func(row bson.M) (models.Class, error) {
		id, err := int64Field(row, "id")
		if err != nil {
			return models.Class{}, err
		}
		return models.Class{ID: id, Name: stringField(row, "name")}, nil
	})
}

// Sections returns the section table.
func (r *RecordRepository) Sections(ctx context.Context) ([]models.Section, error) {
	return load(ctx, r, models.TableSection, func(row bson.M) (models.Section, error) {
		id, err := int64Field(row, "id")
		if err != nil {
			return models.Section{}, err
		}
		return models.Section{ID: id, Name: stringField(row, "name")}, nil
	})
}

// Students returns the student table.
func (r *RecordRepository) Students(ctx context.Context) ([]models.Student, error) {
	return load(ctx, r, models.TableStudent, func(row bson.M) (models.Student, error) {
		id, err := int64Field(row, "id")
		if err != nil {
			return models.Student{}, err
		}
		return models.Student{
			ID:         id,
			RegisterNo: stringField(row, "register_no"),
			FirstName:  stringField(row, "first_name"),
			LastName:   stringField(row, "last_name"),
		}, nil
	})
}

// Enrollments returns the enroll table.
func (r *RecordRepository) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	return load(ctx, r, models.TableEnrollment, func(row bson.M) (models.Enrollment, error) {
		var (
			e   models.Enrollment
			err error
		)
		if e.StudentID, err = int64Field(row, "student_id"); err != nil {
			return e, err
		}
		if e.ClassID, err = int64Field(row, "class_id"); err != nil {
			return e, err
		}
		if e.SectionID, err = int64Field(row, "section_id"); err != nil {
			return e, err
		}
		return e, nil
	})
}

// Subjects returns the subject table.
func (r *RecordRepository) Subjects(ctx context.Context) ([]models.Subject, error) {
	return load(ctx, r, models.TableSubject, func(row bson.M) (models.Subject, error) {
		id, err := int64Field(row, "id")
		if err != nil {
			return models.Subject{}, err
		}
		return models.Subject{ID: id, Name: stringField(row, "name")}, nil
	})
}

// Marks returns the mark table.
func (r *RecordRepository) Marks(ctx context.Context) ([]models.Mark, error) {
	return load(ctx, r, models.TableMark, func(row bson.M) (models.Mark, error) {
		var m models.Mark
		studentID, err := int64Field(row, "student_id")
		if err != nil {
			return m, err
		}
		subjectID, err := int64Field(row, "subject_id")
		if err != nil {
			return m, err
		}
		examID, err := int64Field(row, "exam_id")
		if err != nil {
			return m, err
		}
		m.StudentID = studentID
		m.SubjectID = subjectID
		m.ExamID = models.ExamTerm(examID)
		m.Payload = payloadField(row, "mark")
		return m, nil
	})
}

func load[T any](ctx context.Context, r *RecordRepository, table models.TableName, decode func(bson.M) (T, error)) ([]T, error) {
	rows, err := r.tables.Rows(ctx, table)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(rows))
	for i, row := range rows {
		record, err := decode(row)
		if err == nil {
			err = r.validate.Struct(record)
		}
		if err != nil {
			r.logger.Warn("dropping malformed row",
				zap.String("table", string(table)),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
