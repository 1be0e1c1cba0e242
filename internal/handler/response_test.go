package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrDocumentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUnsupportedDocumentType, http.StatusBadRequest, "UNSUPPORTED_DOCUMENT_TYPE"},
		{domain.ErrEmptyDocument, http.StatusBadRequest, "EMPTY_DOCUMENT"},
		{domain.ErrDocumentNotExtracted, http.StatusConflict, "NOT_EXTRACTED"},
		{domain.ErrExtractionInProgress, http.StatusConflict, "EXTRACTION_IN_PROGRESS"},
		{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{domain.ErrUploadFailed, http.StatusBadGateway, "UPLOAD_FAILED"},
		{errors.New("driver: bad connection"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code, msg := MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("documentRepo.GetByID: %w", domain.ErrDocumentNotFound)
	status, code, _ := MapDomainError(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", code)
}
