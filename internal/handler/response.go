package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/middleware"
)

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries pagination information.
type Meta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// OK writes a successful response.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// OKWithMeta writes a successful response with pagination meta.
func OKWithMeta(c *gin.Context, status int, data interface{}, meta *Meta) {
	c.JSON(status, APIResponse{Success: true, Data: data, Meta: meta})
}

// Fail writes an error response.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: message}})
}

// MapDomainError converts domain errors into HTTP status, code, and message.
func MapDomainError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "insufficient permissions"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrOrganizationInactive):
		return http.StatusForbidden, "ORGANIZATION_INACTIVE", "organization is inactive"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user account is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "a user with this email already exists"
	case errors.Is(err, domain.ErrDuplicateSlug):
		return http.StatusConflict, "DUPLICATE_SLUG", "an organization with this slug already exists"
	case errors.Is(err, domain.ErrUnsupportedDocumentType):
		return http.StatusBadRequest, "UNSUPPORTED_DOCUMENT_TYPE", "unsupported document type"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "document text is empty"
	case errors.Is(err, domain.ErrDocumentNotExtracted):
		return http.StatusConflict, "NOT_EXTRACTED", "document has not been extracted yet"
	case errors.Is(err, domain.ErrExtractionInProgress):
		return http.StatusConflict, "EXTRACTION_IN_PROGRESS", "extraction is currently in progress"
	case errors.Is(err, domain.ErrRawTextMissing):
		return http.StatusConflict, "RAW_TEXT_MISSING", "raw document text is unavailable"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "UPLOAD_FAILED", "failed to store document text"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and writes the response.
func HandleError(c *gin.Context, err error) {
	status, code, message := MapDomainError(err)
	Fail(c, status, code, message)
}

// extractAuthContext pulls the organization and user IDs set by AuthMiddleware.
// Aborts with 401 when missing.
func extractAuthContext(c *gin.Context) (orgID, userID uuid.UUID, ok bool) {
	orgID, ok = middleware.GetOrganizationID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok = middleware.GetUserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, userID, true
}
