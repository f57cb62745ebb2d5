package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/progress-card/pkg/errors"
)

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends data as a bare JSON document.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// HTML writes an already rendered page.
func HTML(c *gin.Context, body []byte) {
	noStore(c)
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// Attachment streams a generated document as a download.
func Attachment(c *gin.Context, contentType, filename string, body []byte) {
	document(c, "attachment", contentType, filename, body)
}

// Inline streams a generated document for display in the browser.
func Inline(c *gin.Context, contentType, filename string, body []byte) {
	document(c, "inline", contentType, filename, body)
}

func document(c *gin.Context, disposition, contentType, filename string, body []byte) {
	noStore(c)
	c.Header("Content-Disposition", disposition+`; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// Error sends the client-facing message of err as plain text. Causes stay server side.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.String(appErr.Status, appErr.Message)
}
