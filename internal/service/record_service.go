package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/progress-card/internal/models"
	"github.com/noah-isme/progress-card/internal/repository"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
)

type recordRepository interface {
	Classes(ctx context.Context) ([]models.Class, error)
	Sections(ctx context.Context) ([]models.Section, error)
	Students(ctx context.Context) ([]models.Student, error)
	Enrollments(ctx context.Context) ([]models.Enrollment, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
	Marks(ctx context.Context) ([]models.Mark, error)
}

// RecordService serves typed tables through the optional table cache and maps store
// failures onto API errors.
type RecordService struct {
	repo  recordRepository
	cache *CacheService
}

// NewRecordService constructs a record service. A nil cache reads the store every time.
func NewRecordService(repo recordRepository, cache *CacheService) *RecordService {
	return &RecordService{repo: repo, cache: cache}
}

// Classes returns the class table.
func (s *RecordService) Classes(ctx context.Context) ([]models.Class, error) {
	return fetchTable(ctx, s, models.TableClass, s.repo.Classes)
}

// Sections returns the section table.
func (s *RecordService) Sections(ctx context.Context) ([]models.Section, error) {
	return fetchTable(ctx, s, models.TableSection, s.repo.Sections)
}

// Students returns the student table.
func (s *RecordService) Students(ctx context.Context) ([]models.Student, error) {
	return fetchTable(ctx, s, models.TableStudent, s.repo.Students)
}

// Enrollments returns the enroll table.
func (s *RecordService) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	return fetchTable(ctx, s, models.TableEnrollment, s.repo.Enrollments)
}

// Subjects returns the subject table.
func (s *RecordService) Subjects(ctx context.Context) ([]models.Subject, error) {
	return fetchTable(ctx, s, models.TableSubject, s.repo.Subjects)
}

// Marks returns the mark table.
func (s *RecordService) Marks(ctx context.Context) ([]models.Mark, error) {
	return fetchTable(ctx, s, models.TableMark, s.repo.Marks)
}

func fetchTable[T any](ctx context.Context, s *RecordService, table models.TableName, load func(context.Context) ([]T, error)) ([]T, error) {
	rows, err := remember(ctx, s.cache, CacheKey("table", string(table)), load)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, fmt.Sprintf("table %s not found", table))
		}
		return nil, appErrors.Processing(err, fmt.Sprintf("failed to read table %s", table))
	}
	return rows, nil
}
