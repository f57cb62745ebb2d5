package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-card/internal/view"
	appErrors "github.com/noah-isme/progress-card/pkg/errors"
	"github.com/noah-isme/progress-card/pkg/response"
)

// Client-facing messages for processing failures, per endpoint.
const (
	msgFetchData     = "Error fetching data"
	msgFetchStudents = "Error fetching students"
	msgReport        = "Error generating report"
	msgTemplate      = "Error loading report template"
	msgPDF           = "Error generating PDF"
	msgWorkbook      = "Error generating workbook"
	msgStoreNotReady = "Store not reachable"
)

// respondError attaches err for request logging and writes it as plain text. Not-found
// messages pass through; every 5xx is reported with the endpoint's message.
func respondError(c *gin.Context, err error, message string) {
	_ = c.Error(err)

	if errors.Is(err, view.ErrTemplate) {
		message = msgTemplate
	}
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		appErr = appErrors.Clone(appErr, message)
	}
	response.Error(c, appErr)
}
