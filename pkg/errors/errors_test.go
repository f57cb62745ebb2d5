package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrNotFound, "Student not found")

	assert.Equal(t, "Student not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", err)))
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestFromErrorNormalisesUnknownErrors(t *testing.T) {
	appErr := FromError(errors.New("boom"))

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.False(t, IsNotFound(appErr))
	assert.Nil(t, FromError(nil))
}

func TestProcessingWrapsCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := Processing(cause, "Error generating report")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrProcessing)
	assert.Equal(t, "Error generating report: socket closed", err.Error())
	assert.Equal(t, ErrProcessing.Message, Processing(cause, "").Message)
}
