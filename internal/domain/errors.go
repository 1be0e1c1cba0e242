package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrOrganizationInactive    = errors.New("organization is inactive")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDuplicateEmail          = errors.New("email already exists for this organization")
	ErrDuplicateSlug           = errors.New("organization slug already exists")
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrEmptyDocument           = errors.New("document text is empty")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentNotExtracted    = errors.New("document has not been extracted yet")
	ErrExtractionInProgress    = errors.New("extraction is already in progress")
	ErrRawTextMissing          = errors.New("stored document text is missing")
	ErrUploadFailed            = errors.New("document upload to storage failed")
)
