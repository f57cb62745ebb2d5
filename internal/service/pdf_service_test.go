package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/progress-card/internal/models"
	"github.com/noah-isme/progress-card/pkg/export"
	"github.com/noah-isme/progress-card/pkg/storage"
)

type capturingRenderer struct {
	doc export.LineDocument
}

func (c *capturingRenderer) RenderLines(doc export.LineDocument) ([]byte, error) {
	c.doc = doc
	return []byte("%PDF-fake"), nil
}

type failingStorage struct {
	*storage.LocalStorage
	readErr error
}

func (f *failingStorage) Read(filename string) ([]byte, error) {
	return nil, f.readErr
}

func newScratch(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func scratchFiles(t *testing.T, store *storage.LocalStorage) []string {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestPDFGenerateLines(t *testing.T) {
	records := schoolRecords()
	records.marks = append(records.marks,
		models.Mark{StudentID: 1, SubjectID: 99, ExamID: models.ExamSecondMidterm, Payload: `{"1": 55}`},
		models.Mark{StudentID: 1, SubjectID: 10, ExamID: models.ExamTerm(9), Payload: "bad"},
	)
	renderer := &capturingRenderer{}
	store := newScratch(t)
	svc := NewPDFService(records, store, renderer, nil)

	doc, err := svc.Generate(context.Background(), "S100")
	require.NoError(t, err)

	assert.Equal(t, "Progress Report for Asha Kumar", renderer.doc.Title)
	assert.Equal(t, []string{
		"First Midterm : MATHEMATICS : 88",
		"Quarterly : MATHEMATICS : 91",
		"Second Midterm : NA : 55",
		"Exam 9 : MATHEMATICS : 0",
	}, renderer.doc.Lines)

	assert.Equal(t, "progress_report_S100.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "%PDF-fake", string(doc.Content))
	assert.Empty(t, scratchFiles(t, store))
}

func TestPDFGenerateWithoutMarksRendersTitleOnly(t *testing.T) {
	store := newScratch(t)
	svc := NewPDFService(schoolRecords(), store, nil, nil)

	doc, err := svc.Generate(context.Background(), "S102")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
	assert.Empty(t, scratchFiles(t, store))
}

func TestPDFGenerateSanitisesFilename(t *testing.T) {
	records := schoolRecords()
	records.students[0].RegisterNo = "../S 100"
	svc := NewPDFService(records, newScratch(t), &capturingRenderer{}, nil)

	doc, err := svc.Generate(context.Background(), "../S 100")
	require.NoError(t, err)
	assert.Equal(t, "progress_report__S_100.pdf", doc.Filename)
}

func TestPDFGenerateUnknownStudent(t *testing.T) {
	svc := NewPDFService(schoolRecords(), newScratch(t), &capturingRenderer{}, nil)

	_, err := svc.Generate(context.Background(), "S999")
	assertAppError(t, err, http.StatusNotFound, "Student not found")
}

func TestPDFGenerateRemovesScratchOnReadFailure(t *testing.T) {
	store := newScratch(t)
	svc := NewPDFService(schoolRecords(), &failingStorage{LocalStorage: store, readErr: errors.New("io")}, &capturingRenderer{}, nil)

	_, err := svc.Generate(context.Background(), "S100")
	assertAppError(t, err, http.StatusInternalServerError, "failed to read pdf")
	assert.Empty(t, scratchFiles(t, store))
}

func TestPDFJanitorRemovesStaleFiles(t *testing.T) {
	store := newScratch(t)
	_, err := store.Save("stale.pdf", []byte("x"))
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(store.Dir(), "stale.pdf"), past, past))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	NewPDFService(schoolRecords(), store, nil, nil).StartJanitor(ctx, 10*time.Millisecond, time.Minute)

	assert.Eventually(t, func() bool {
		return len(scratchFiles(t, store)) == 0
	}, time.Second, 10*time.Millisecond)
}
