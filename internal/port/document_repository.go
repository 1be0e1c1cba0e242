package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

// SaveResultInput carries one finished extraction outcome to the store.
type SaveResultInput struct {
	Status             domain.ExtractionStatus
	ExtractedData      types.JSONText
	ValidationErrors   types.JSONText
	ValidationWarnings types.JSONText
	IsValid            *bool
	Completeness       *int
	ModelUsed          string
	ExtractedAt        *time.Time
}

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, orgID, docID uuid.UUID) (*domain.Document, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, docType string, offset, limit int) ([]domain.Document, int, error)
	UpdateStatus(ctx context.Context, docID uuid.UUID, status domain.ExtractionStatus) error
	SaveResult(ctx context.Context, docID uuid.UUID, input SaveResultInput) error
	Delete(ctx context.Context, orgID, docID uuid.UUID) error
}
