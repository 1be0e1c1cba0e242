package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/export"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/extract"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

// CreateDocumentInput is the DTO for document submission.
type CreateDocumentInput struct {
	DocumentType string `json:"document_type" binding:"required"`
	FileName     string `json:"file_name"`
	RawText      string `json:"raw_text" binding:"required"`
}

// DocumentResult is the API view of a finished extraction.
type DocumentResult struct {
	DocumentID    uuid.UUID               `json:"document_id"`
	DocumentType  domain.DocumentType     `json:"document_type"`
	Status        domain.ExtractionStatus `json:"status"`
	IsValid       *bool                   `json:"is_valid,omitempty"`
	Errors        json.RawMessage         `json:"errors,omitempty"`
	Warnings      json.RawMessage         `json:"warnings,omitempty"`
	Completeness  *int                    `json:"completeness,omitempty"`
	ExtractedData json.RawMessage         `json:"extracted_data,omitempty"`
	ModelUsed     string                  `json:"model_used,omitempty"`
	ExtractedAt   *time.Time              `json:"extracted_at,omitempty"`
}

// DocumentService defines document intake, extraction and retrieval operations.
type DocumentService interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, input CreateDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, orgID uuid.UUID, docType string, offset, limit int) ([]domain.Document, int, error)
	GetResult(ctx context.Context, orgID, docID uuid.UUID) (*DocumentResult, error)
	Reextract(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error)
	Delete(ctx context.Context, orgID, docID uuid.UUID) error
	ExportXLSX(ctx context.Context, orgID uuid.UUID) ([]byte, error)
}

type documentService struct {
	docRepo        port.DocumentRepository
	storage        port.ObjectStorage
	orchestrator   *extract.Orchestrator
	cache          port.ResultCache
	bucket         string
	modelName      string
	requestTimeout time.Duration
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	orchestrator *extract.Orchestrator,
	cache port.ResultCache,
	s3Cfg *config.S3Config,
	extractCfg *config.ExtractConfig,
	modelName string,
) DocumentService {
	return &documentService{
		docRepo:        docRepo,
		storage:        storage,
		orchestrator:   orchestrator,
		cache:          cache,
		bucket:         s3Cfg.Bucket,
		modelName:      modelName,
		requestTimeout: extractCfg.RequestTimeout(),
	}
}

func resultCacheKey(docID uuid.UUID) string {
	return "result:" + docID.String()
}

func (s *documentService) Create(ctx context.Context, orgID, userID uuid.UUID, input CreateDocumentInput) (*domain.Document, error) {
	docType, err := domain.ParseDocumentType(input.DocumentType)
	if err != nil {
		return nil, err
	}

	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" {
		return nil, domain.ErrEmptyDocument
	}

	key := fmt.Sprintf("raw/%s/%s.txt", orgID, uuid.New())
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        strings.NewReader(rawText),
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		log.Printf("documentService.Create: upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	doc := &domain.Document{
		OrganizationID: orgID,
		UploadedBy:     userID,
		DocumentType:   docType,
		FileName:       input.FileName,
		RawTextKey:     key,
		Status:         domain.ExtractionPending,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	go s.runExtraction(doc.ID, docType, rawText)

	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, orgID, docID)
}

func (s *documentService) List(ctx context.Context, orgID uuid.UUID, docType string, offset, limit int) ([]domain.Document, int, error) {
	if docType != "" {
		if _, err := domain.ParseDocumentType(docType); err != nil {
			return nil, 0, err
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.docRepo.ListByOrganization(ctx, orgID, docType, offset, limit)
}

func (s *documentService) GetResult(ctx context.Context, orgID, docID uuid.UUID) (*DocumentResult, error) {
	if cached, ok := s.cache.Get(resultCacheKey(docID)); ok {
		if result, ok := cached.(*DocumentResult); ok && result.DocumentID == docID {
			// Still verify tenant ownership before serving from cache.
			if _, err := s.docRepo.GetByID(ctx, orgID, docID); err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	doc, err := s.docRepo.GetByID(ctx, orgID, docID)
	if err != nil {
		return nil, err
	}

	switch doc.Status {
	case domain.ExtractionPending:
		return nil, domain.ErrDocumentNotExtracted
	case domain.ExtractionProcessing:
		return nil, domain.ErrExtractionInProgress
	}

	result := &DocumentResult{
		DocumentID:    doc.ID,
		DocumentType:  doc.DocumentType,
		Status:        doc.Status,
		IsValid:       doc.IsValid,
		Errors:        json.RawMessage(doc.ValidationErrors),
		Warnings:      json.RawMessage(doc.ValidationWarnings),
		Completeness:  doc.Completeness,
		ExtractedData: json.RawMessage(doc.ExtractedData),
		ModelUsed:     doc.ModelUsed,
		ExtractedAt:   doc.ExtractedAt,
	}
	s.cache.Set(resultCacheKey(docID), result)
	return result, nil
}

func (s *documentService) Reextract(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, orgID, docID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.ExtractionProcessing {
		return nil, domain.ErrExtractionInProgress
	}
	if doc.RawTextKey == "" {
		return nil, domain.ErrRawTextMissing
	}

	data, err := s.storage.Download(ctx, s.bucket, doc.RawTextKey)
	if err != nil {
		log.Printf("documentService.Reextract: download failed: %v", err)
		return nil, domain.ErrRawTextMissing
	}

	if err := s.docRepo.UpdateStatus(ctx, doc.ID, domain.ExtractionProcessing); err != nil {
		return nil, err
	}
	doc.Status = domain.ExtractionProcessing
	s.cache.Delete(resultCacheKey(doc.ID))

	go s.runExtraction(doc.ID, doc.DocumentType, string(data))

	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, orgID, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, orgID, docID)
	if err != nil {
		return err
	}
	if err := s.docRepo.Delete(ctx, orgID, docID); err != nil {
		return err
	}
	if doc.RawTextKey != "" {
		if err := s.storage.Delete(ctx, s.bucket, doc.RawTextKey); err != nil {
			// Orphaned raw text is cleaned up by the bucket lifecycle rule.
			log.Printf("documentService.Delete: storage cleanup failed: %v", err)
		}
	}
	s.cache.Delete(resultCacheKey(docID))
	return nil
}

func (s *documentService) ExportXLSX(ctx context.Context, orgID uuid.UUID) ([]byte, error) {
	docs, _, err := s.docRepo.ListByOrganization(ctx, orgID, "", 0, 10000)
	if err != nil {
		return nil, err
	}
	return export.DocumentsXLSX(docs)
}

// runExtraction executes one extraction run in the background under the
// configured request-level deadline and persists the outcome.
func (s *documentService) runExtraction(docID uuid.UUID, docType domain.DocumentType, rawText string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.requestTimeout)
	defer cancel()

	if err := s.docRepo.UpdateStatus(ctx, docID, domain.ExtractionProcessing); err != nil {
		log.Printf("documentService.runExtraction: marking processing: %v", err)
		return
	}

	result := s.orchestrator.ExtractAndValidate(ctx, docType, rawText)

	status := domain.ExtractionCompleted
	if ctx.Err() != nil {
		status = domain.ExtractionFailed
	}

	dataJSON, err := json.Marshal(result.Data)
	if err != nil {
		log.Printf("documentService.runExtraction: marshaling data: %v", err)
		dataJSON = []byte("null")
	}
	errsJSON, _ := json.Marshal(result.Errors)
	warnsJSON, _ := json.Marshal(result.Warnings)

	isValid := result.IsValid
	completeness := result.Completeness
	now := time.Now().UTC()

	// The run context may already be expired, so persist under a fresh one.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer saveCancel()

	err = s.docRepo.SaveResult(saveCtx, docID, port.SaveResultInput{
		Status:             status,
		ExtractedData:      types.JSONText(dataJSON),
		ValidationErrors:   types.JSONText(errsJSON),
		ValidationWarnings: types.JSONText(warnsJSON),
		IsValid:            &isValid,
		Completeness:       &completeness,
		ModelUsed:          s.modelName,
		ExtractedAt:        &now,
	})
	if err != nil {
		log.Printf("documentService.runExtraction: saving result: %v", err)
		return
	}
	s.cache.Delete(resultCacheKey(docID))
	log.Printf("documentService.runExtraction: document %s %s (valid=%t completeness=%d)",
		docID, status, isValid, completeness)
}
