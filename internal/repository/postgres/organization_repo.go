package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

type organizationRepo struct {
	db *sqlx.DB
}

// NewOrganizationRepo creates a new PostgreSQL-backed OrganizationRepository.
func NewOrganizationRepo(db *sqlx.DB) port.OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	org.ID = uuid.New()
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now

	query := `INSERT INTO organizations (id, name, slug, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		org.ID, org.Name, org.Slug, org.IsActive, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("organizationRepo.Create: %w", err)
	}
	return nil
}

func (r *organizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.GetContext(ctx, &org, "SELECT * FROM organizations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("organizationRepo.GetByID: %w", err)
	}
	return &org, nil
}

func (r *organizationRepo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.GetContext(ctx, &org, "SELECT * FROM organizations WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("organizationRepo.GetBySlug: %w", err)
	}
	return &org, nil
}
