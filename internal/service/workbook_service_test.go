package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookGenerate(t *testing.T) {
	cards := NewProgressCardService(schoolRecords(), fixedPalette(), nil)
	svc := NewWorkbookService(cards, nil)

	doc, err := svc.Generate(context.Background(), "S100")
	require.NoError(t, err)
	assert.Equal(t, "progress_report_S100.xlsx", doc.Filename)
	assert.Equal(t, xlsxContentType, doc.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Content))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows("S100")
	require.NoError(t, err)
	require.Len(t, rows, 3+1+1+4)
	assert.Equal(t, "Asha Kumar - Class Fifth B (S100)", rows[0][0])
	assert.Equal(t, "Subject", rows[2][0])
	assert.Equal(t, []string{"Mathematics", "100", "35", "88", "91", "NA", "NA", "NA", "NA"}, rows[3])
	assert.Equal(t, "Total", rows[4][0])
	assert.Equal(t, "Attendance", rows[5][0])
}

func TestWorkbookGeneratePropagatesNotFound(t *testing.T) {
	svc := NewWorkbookService(NewProgressCardService(schoolRecords(), fixedPalette(), nil), nil)

	_, err := svc.Generate(context.Background(), "S999")
	assertAppError(t, err, http.StatusNotFound, "Student not found")
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "S_100", sheetName("S/100"))
	assert.Equal(t, "Progress Card", sheetName("  "))
	assert.Len(t, sheetName("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"), 31)
}
