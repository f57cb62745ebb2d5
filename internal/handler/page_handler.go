package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-card/internal/models"
	"github.com/noah-isme/progress-card/pkg/response"
)

type pickerSource interface {
	PickerOptions(ctx context.Context) (*models.PickerOptions, error)
}

type pageRenderer interface {
	Picker(opts *models.PickerOptions) ([]byte, error)
	Report(card *models.ProgressCard) ([]byte, error)
}

// PageHandler serves the landing page.
type PageHandler struct {
	roster pickerSource
	views  pageRenderer
}

// NewPageHandler constructs a page handler.
func NewPageHandler(roster pickerSource, views pageRenderer) *PageHandler {
	return &PageHandler{roster: roster, views: views}
}

// Index godoc
// @Summary Class and section picker
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router / [get]
func (h *PageHandler) Index(c *gin.Context) {
	opts, err := h.roster.PickerOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, msgFetchData)
		return
	}
	page, err := h.views.Picker(opts)
	if err != nil {
		respondError(c, err, msgFetchData)
		return
	}
	response.HTML(c, page)
}
