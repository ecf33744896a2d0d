package store

import (
	"context"
	"errors"

	"travelsuite.app/api/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a write violates a unique constraint
	ErrAlreadyExists = errors.New("already exists")
)

// UserStore defines the contract for user (credential) data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// SetOrganization links a user without an organization. An already
	// linked user yields ErrAlreadyExists.
	SetOrganization(ctx context.Context, userID, organizationID int64) error
	TouchLastLogin(ctx context.Context, id int64) error
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
}

// TourStore defines the contract for tour data access. Every method is scoped
// by organization; deleted tours are invisible to all of them.
type TourStore interface {
	Get(ctx context.Context, organizationID int64, tourID string) (*model.Tour, error)
	Create(ctx context.Context, tour *model.Tour) error
	UpdateData(ctx context.Context, tour *model.Tour) error
	SoftDelete(ctx context.Context, organizationID int64, tourID string, deletedBy int64) error
	ListByOrganization(ctx context.Context, organizationID int64) ([]model.Tour, error)
}
