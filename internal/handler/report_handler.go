package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-card/internal/models"
	"github.com/noah-isme/progress-card/internal/service"
	"github.com/noah-isme/progress-card/pkg/response"
)

type cardBuilder interface {
	Build(ctx context.Context, registerNo string) (*models.ProgressCard, error)
}

type documentGenerator interface {
	Generate(ctx context.Context, registerNo string) (*service.Document, error)
}

// ReportHandler serves a student's progress card as HTML, PDF and xlsx.
type ReportHandler struct {
	cards    cardBuilder
	views    pageRenderer
	pdf      documentGenerator
	workbook documentGenerator
	metrics  documentCounter
}

// NewReportHandler constructs a report handler.
func NewReportHandler(cards cardBuilder, views pageRenderer, pdf, workbook documentGenerator, metrics documentCounter) *ReportHandler {
	return &ReportHandler{cards: cards, views: views, pdf: pdf, workbook: workbook, metrics: metrics}
}

// HTML godoc
// @Summary Progress card page
// @Tags Reports
// @Produce html
// @Param studentId path string true "Student register number"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /report/{studentId} [get]
func (h *ReportHandler) HTML(c *gin.Context) {
	card, err := h.cards.Build(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		respondError(c, err, msgReport)
		return
	}
	page, err := h.views.Report(card)
	if err != nil {
		respondError(c, err, msgTemplate)
		return
	}
	h.recordDocument("html")
	response.HTML(c, page)
}

// PDF godoc
// @Summary Abbreviated progress report
// @Description One line per mark row; totals and signature rows are not included.
// @Tags Reports
// @Produce application/pdf
// @Param registerNo path string true "Student register number"
// @Success 200 {file} file
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /pdf/{registerNo} [get]
func (h *ReportHandler) PDF(c *gin.Context) {
	doc, err := h.pdf.Generate(c.Request.Context(), c.Param("registerNo"))
	if err != nil {
		respondError(c, err, msgPDF)
		return
	}
	h.recordDocument("pdf")
	response.Inline(c, doc.ContentType, doc.Filename, doc.Content)
}

// XLSX godoc
// @Summary Progress card workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param registerNo path string true "Student register number"
// @Success 200 {file} file
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /xlsx/{registerNo} [get]
func (h *ReportHandler) XLSX(c *gin.Context) {
	doc, err := h.workbook.Generate(c.Request.Context(), c.Param("registerNo"))
	if err != nil {
		respondError(c, err, msgWorkbook)
		return
	}
	h.recordDocument("xlsx")
	response.Attachment(c, doc.ContentType, doc.Filename, doc.Content)
}

func (h *ReportHandler) recordDocument(format string) {
	if h.metrics != nil {
		h.metrics.RecordDocument(format)
	}
}
