package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/progress-card/internal/models"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
	"github.com/noah-isme/progress-card/pkg/export"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type scratchStorage interface {
	Save(filename string, data []byte) (string, error)
	Read(filename string) ([]byte, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type lineRenderer interface {
	RenderLines(doc export.LineDocument) ([]byte, error)
}

// Document is a generated download.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// PDFService produces the abbreviated PDF summary: one line per mark row, without the
// totals or trailer rows of the HTML card.
type PDFService struct {
	records recordReader
	storage scratchStorage
	pdf     lineRenderer
	logger  *zap.Logger
}

// NewPDFService constructs a PDF service.
func NewPDFService(records recordReader, storage scratchStorage, pdf lineRenderer, logger *zap.Logger) *PDFService {
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFService{records: records, storage: storage, pdf: pdf, logger: logger}
}

// Generate renders the summary for the student with the given register number. The
// document passes through a uniquely named scratch file that is removed before returning.
func (s *PDFService) Generate(ctx context.Context, registerNo string) (*Document, error) {
	registerNo = strings.TrimSpace(registerNo)

	students, err := s.records.Students(ctx)
	if err != nil {
		return nil, err
	}
	marks, err := s.records.Marks(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.records.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	student, ok := findStudent(students, registerNo)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgStudentNotFound)
	}

	names := make(map[int64]string, len(subjects))
	for _, subject := range subjects {
		if _, exists := names[subject.ID]; !exists {
			names[subject.ID] = subject.Name
		}
	}

	doc := export.LineDocument{Title: "Progress Report for " + student.FullName()}
	for _, mark := range marksOf(marks, student.ID) {
		name, ok := names[mark.SubjectID]
		if !ok {
			name = models.NotAvailable
		}
		doc.Lines = append(doc.Lines, fmt.Sprintf("%s : %s : %d", mark.ExamID.Label(), name, ExtractMark(mark.Payload)))
	}

	rendered, err := s.pdf.RenderLines(doc)
	if err != nil {
		return nil, appErrors.Processing(err, "failed to render pdf")
	}

	safeID := unsafeFilenameChars.ReplaceAllString(student.RegisterNo, "_")
	scratch := fmt.Sprintf("progress_report_%s_%s.pdf", safeID, uuid.NewString())
	if _, err := s.storage.Save(scratch, rendered); err != nil {
		return nil, appErrors.Processing(err, "failed to write pdf")
	}
	defer func() {
		if err := s.storage.Delete(scratch); err != nil {
			s.logger.Warn("failed to remove scratch pdf", zap.String("file", scratch), zap.Error(err))
		}
	}()

	content, err := s.storage.Read(scratch)
	if err != nil {
		return nil, appErrors.Processing(err, "failed to read pdf")
	}

	return &Document{
		Filename:    fmt.Sprintf("progress_report_%s.pdf", safeID),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// StartJanitor removes scratch files older than ttl every interval until ctx is done.
// Files only linger when a request dies between write and delete.
func (s *PDFService) StartJanitor(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 || ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.storage.CleanupOlderThan(ttl)
				if err != nil {
					s.logger.Warn("scratch cleanup failed", zap.Error(err))
					continue
				}
				if len(removed) > 0 {
					s.logger.Info("scratch cleanup", zap.Int("removed", len(removed)))
				}
			}
		}
	}()
}
