package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/noah-isme/progress-card/internal/models"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
	"github.com/noah-isme/progress-card/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var unsafeSheetChars = regexp.MustCompile(`[\[\]:*?/\\]`)

type cardBuilder interface {
	Build(ctx context.Context, registerNo string) (*models.ProgressCard, error)
}

type sheetRenderer interface {
	Render(sheet export.Sheet) ([]byte, error)
}

// WorkbookService renders the full progress card, totals and trailers included, as a
// spreadsheet.
type WorkbookService struct {
	cards cardBuilder
	xlsx  sheetRenderer
}

// NewWorkbookService constructs a workbook service.
func NewWorkbookService(cards cardBuilder, xlsx sheetRenderer) *WorkbookService {
	if xlsx == nil {
		xlsx = export.NewXLSXExporter()
	}
	return &WorkbookService{cards: cards, xlsx: xlsx}
}

// Generate builds the student's card and renders it to xlsx.
func (s *WorkbookService) Generate(ctx context.Context, registerNo string) (*Document, error) {
	card, err := s.cards.Build(ctx, registerNo)
	if err != nil {
		return nil, err
	}

	sheet := export.Sheet{
		Name:     sheetName(card.RegisterNo),
		Title:    card.StudentName + " - Class " + card.ClassName + " " + card.SectionName + " (" + card.RegisterNo + ")",
		Headers:  models.ReportColumns,
		Rows:     make([]export.SheetRow, 0),
		Numbered: false,
	}
	for _, row := range card.Rows() {
		cells := append([]string{row.Label}, row.Cells...)
		sheet.Rows = append(sheet.Rows, export.SheetRow{Cells: cells, Fill: row.Color})
	}

	content, err := s.xlsx.Render(sheet)
	if err != nil {
		return nil, appErrors.Processing(err, "failed to render workbook")
	}

	return &Document{
		Filename:    "progress_report_" + unsafeFilenameChars.ReplaceAllString(card.RegisterNo, "_") + ".xlsx",
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

// sheetName makes a register number usable as an Excel sheet name (max 31 chars).
func sheetName(registerNo string) string {
	name := strings.TrimSpace(unsafeSheetChars.ReplaceAllString(registerNo, "_"))
	if name == "" {
		return "Progress Card"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
