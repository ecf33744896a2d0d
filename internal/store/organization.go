package store

import (
	"context"

	"travelsuite.app/api/core/db/sqlc"
	"travelsuite.app/api/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

// GetByUserID resolves the organization linked through users.organization_id.
// A user without an organization yields ErrNotFound.
func (s *organizationStore) GetByUserID(ctx context.Context, userID int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		Address:     org.Address,
		Website:     org.Website,
		Phone:       org.Phone,
		LogoUrl:     org.LogoURL,
		CreatedBy:   org.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.UpdateOrganization(ctx, sqlc.UpdateOrganizationParams{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		Address:     org.Address,
		Website:     org.Website,
		Phone:       org.Phone,
		LogoUrl:     org.LogoURL,
		UpdatedBy:   org.UpdatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Address:     row.Address,
		Website:     row.Website,
		Phone:       row.Phone,
		LogoURL:     row.LogoUrl,
		CreatedBy:   row.CreatedBy,
		UpdatedBy:   row.UpdatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
