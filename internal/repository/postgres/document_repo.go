package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if doc.Status == "" {
		doc.Status = domain.ExtractionPending
	}

	query := `INSERT INTO documents (id, organization_id, uploaded_by, document_type, file_name,
		raw_text_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.OrganizationID, doc.UploadedBy, doc.DocumentType, doc.FileName,
		doc.RawTextKey, doc.Status, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND organization_id = $2", docID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID, docType string, offset, limit int) ([]domain.Document, int, error) {
	countQuery := "SELECT COUNT(*) FROM documents WHERE organization_id = $1"
	listQuery := "SELECT * FROM documents WHERE organization_id = $1"
	args := []interface{}{orgID}

	if docType != "" {
		countQuery += " AND document_type = $2"
		listQuery += " AND document_type = $2"
		args = append(args, docType)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByOrganization count: %w", err)
	}

	listQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByOrganization: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, docID uuid.UUID, status domain.ExtractionStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2", status, docID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) SaveResult(ctx context.Context, docID uuid.UUID, input port.SaveResultInput) error {
	query := `UPDATE documents SET
		status = $1,
		extracted_data = $2,
		validation_errors = $3,
		validation_warnings = $4,
		is_valid = $5,
		completeness = $6,
		model_used = $7,
		extracted_at = $8,
		updated_at = NOW()
		WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		input.Status, input.ExtractedData, input.ValidationErrors, input.ValidationWarnings,
		input.IsValid, input.Completeness, input.ModelUsed, input.ExtractedAt, docID)
	if err != nil {
		return fmt.Errorf("documentRepo.SaveResult: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, orgID, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = $1 AND organization_id = $2", docID, orgID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
