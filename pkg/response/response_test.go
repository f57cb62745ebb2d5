package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/progress-card/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorWritesPlainTextMessage(t *testing.T) {
	c, w := newContext()

	Error(c, appErrors.Clone(appErrors.ErrNotFound, "Student not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestErrorHidesUnknownCauses(t *testing.T) {
	c, w := newContext()

	Error(c, errors.New("dial tcp 10.0.0.1:27017: refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, appErrors.ErrInternal.Message, w.Body.String())
}

func TestAttachmentSetsDisposition(t *testing.T) {
	c, w := newContext()

	Attachment(c, "application/pdf", "card.pdf", []byte("%PDF"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="card.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String())
}

func TestInlineSetsDisposition(t *testing.T) {
	c, w := newContext()

	Inline(c, "application/pdf", "card.pdf", []byte("%PDF"))

	assert.Equal(t, `inline; filename="card.pdf"`, w.Header().Get("Content-Disposition"))
}
