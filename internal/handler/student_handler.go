package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-card/internal/models"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
	"github.com/noah-isme/progress-card/pkg/response"
)

const csvContentType = "text/csv; charset=utf-8"

type rosterService interface {
	ListStudents(ctx context.Context, classID, sectionID int64) ([]models.Student, error)
	RosterCSV(ctx context.Context, classID, sectionID int64) ([]byte, error)
}

type documentCounter interface {
	RecordDocument(format string)
}

// StudentHandler lists the students of a class section.
type StudentHandler struct {
	roster  rosterService
	metrics documentCounter
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(roster rosterService, metrics documentCounter) *StudentHandler {
	return &StudentHandler{roster: roster, metrics: metrics}
}

// List godoc
// @Summary Students enrolled in a class section
// @Tags Students
// @Produce json
// @Produce text/csv
// @Param classId path int true "Class ID"
// @Param sectionId path int true "Section ID"
// @Param format query string false "csv for a download"
// @Success 200 {array} models.Student
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /students/{classId}/{sectionId} [get]
func (h *StudentHandler) List(c *gin.Context) {
	classID, err := pathID(c, "classId")
	if err != nil {
		respondError(c, err, msgFetchStudents)
		return
	}
	sectionID, err := pathID(c, "sectionId")
	if err != nil {
		respondError(c, err, msgFetchStudents)
		return
	}

	if c.Query("format") == "csv" {
		out, err := h.roster.RosterCSV(c.Request.Context(), classID, sectionID)
		if err != nil {
			respondError(c, err, msgFetchStudents)
			return
		}
		h.recordDocument("csv")
		response.Attachment(c, csvContentType, fmt.Sprintf("students_%d_%d.csv", classID, sectionID), out)
		return
	}

	students, err := h.roster.ListStudents(c.Request.Context(), classID, sectionID)
	if err != nil {
		respondError(c, err, msgFetchStudents)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

func (h *StudentHandler) recordDocument(format string) {
	if h.metrics != nil {
		h.metrics.RecordDocument(format)
	}
}

// pathID parses an integer path parameter. Malformed ids are processing errors.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Processing(err, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return id, nil
}
