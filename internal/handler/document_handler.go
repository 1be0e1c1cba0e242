package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/service"
)

// DocumentHandler serves document intake and extraction endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Create handles POST /api/v1/documents.
func (h *DocumentHandler) Create(c *gin.Context) {
	orgID, userID, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc, err := h.docService.Create(c.Request.Context(), orgID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusAccepted, doc)
}

// List handles GET /api/v1/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docType := c.Query("document_type")
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	docs, total, err := h.docService.List(c.Request.Context(), orgID, docType, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	OKWithMeta(c, http.StatusOK, docs, &Meta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id.
func (h *DocumentHandler) GetByID(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	doc, err := h.docService.GetByID(c.Request.Context(), orgID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusOK, doc)
}

// GetResult handles GET /api/v1/documents/:id/result.
func (h *DocumentHandler) GetResult(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	result, err := h.docService.GetResult(c.Request.Context(), orgID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusOK, result)
}

// Reextract handles POST /api/v1/documents/:id/reextract.
func (h *DocumentHandler) Reextract(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	doc, err := h.docService.Reextract(c.Request.Context(), orgID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusAccepted, doc)
}

// Delete handles DELETE /api/v1/documents/:id. Admin only.
func (h *DocumentHandler) Delete(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	if err := h.docService.Delete(c.Request.Context(), orgID, docID); err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"deleted": true})
}

// Export handles GET /api/v1/documents/export and streams an XLSX workbook.
func (h *DocumentHandler) Export(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	data, err := h.docService.ExportXLSX(c.Request.Context(), orgID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("documents-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
