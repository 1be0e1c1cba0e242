package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

// OrganizationRepository defines the contract for organization persistence.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
}

// UserRepository defines the contract for user persistence.
// All query methods include orgID to enforce organization isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*domain.User, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]domain.User, int, error)
}
