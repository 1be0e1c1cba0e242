package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Organization is the tenant boundary: every user and document belongs to one.
type Organization struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to an organization.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	Role           UserRole  `db:"role" json:"role"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Document is an uploaded trade document plus its extraction outcome.
// The raw text lives in object storage under RawTextKey; only the structured
// result is kept in the database.
type Document struct {
	ID                 uuid.UUID        `db:"id" json:"id"`
	OrganizationID     uuid.UUID        `db:"organization_id" json:"organization_id"`
	UploadedBy         uuid.UUID        `db:"uploaded_by" json:"uploaded_by"`
	DocumentType       DocumentType     `db:"document_type" json:"document_type"`
	FileName           string           `db:"file_name" json:"file_name"`
	RawTextKey         string           `db:"raw_text_key" json:"-"`
	Status             ExtractionStatus `db:"status" json:"status"`
	ExtractedData      types.JSONText   `db:"extracted_data" json:"extracted_data,omitempty"`
	ValidationErrors   types.JSONText   `db:"validation_errors" json:"validation_errors,omitempty"`
	ValidationWarnings types.JSONText   `db:"validation_warnings" json:"validation_warnings,omitempty"`
	IsValid            *bool            `db:"is_valid" json:"is_valid,omitempty"`
	Completeness       *int             `db:"completeness" json:"completeness,omitempty"`
	ModelUsed          string           `db:"model_used" json:"model_used,omitempty"`
	ExtractedAt        *time.Time       `db:"extracted_at" json:"extracted_at,omitempty"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at" json:"updated_at"`
}
