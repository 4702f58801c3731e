package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		kind error
		want int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrNoText, http.StatusBadRequest},
		{ErrExtraction, http.StatusInternalServerError},
		{ErrCompletion, http.StatusInternalServerError},
		{ErrModelOutput, http.StatusInternalServerError},
		{ErrInternal, http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		ae := NewAppError("X", "msg", tt.kind)
		assert.Equal(t, tt.want, HTTPStatus(ae), "kind %v", tt.kind)
	}
}

func TestDetailUsesAppErrorMessage(t *testing.T) {
	ae := NewAppError("NO_TEXT", "no readable text found in the PDF", ErrNoText)
	assert.Equal(t, "no readable text found in the PDF", Detail(ae))

	wrapped := WrapError(ae, "analyze")
	assert.Equal(t, "no readable text found in the PDF", Detail(wrapped))

	assert.Equal(t, "plain failure", Detail(errors.New("plain failure")))
}

func TestAppErrorUnwrap(t *testing.T) {
	ae := NewAppError("EXTRACTION_FAILED", "failed to read PDF", ErrExtraction)
	assert.ErrorIs(t, ae, ErrExtraction)
	assert.Contains(t, ae.Error(), "EXTRACTION_FAILED")
	assert.Contains(t, ae.Error(), "failed to read PDF")
}
