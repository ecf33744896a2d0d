package store

import (
	"context"

	"travelsuite.app/api/core/db/sqlc"
	"travelsuite.app/api/internal/model"
)

type tourStore struct {
	queries *sqlc.Queries
}

func newTourStore(queries *sqlc.Queries) TourStore {
	return &tourStore{queries: queries}
}

func (s *tourStore) Get(ctx context.Context, organizationID int64, tourID string) (*model.Tour, error) {
	row, err := s.queries.GetTour(ctx, sqlc.GetTourParams{
		OrganizationID: organizationID,
		TourID:         tourID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toTourModel(row), nil
}

func (s *tourStore) Create(ctx context.Context, tour *model.Tour) error {
	row, err := s.queries.CreateTour(ctx, sqlc.CreateTourParams{
		ID:             tour.ID,
		TourID:         tour.TourID,
		OrganizationID: tour.OrganizationID,
		TourData:       tour.TourData,
		CreatedBy:      tour.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*tour = *toTourModel(row)
	return nil
}

// UpdateData replaces the tour payload of a live tour identified by
// (OrganizationID, TourID).
func (s *tourStore) UpdateData(ctx context.Context, tour *model.Tour) error {
	row, err := s.queries.UpdateTourData(ctx, sqlc.UpdateTourDataParams{
		OrganizationID: tour.OrganizationID,
		TourID:         tour.TourID,
		TourData:       tour.TourData,
		UpdatedBy:      tour.UpdatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*tour = *toTourModel(row)
	return nil
}

func (s *tourStore) SoftDelete(ctx context.Context, organizationID int64, tourID string, deletedBy int64) error {
	n, err := s.queries.SoftDeleteTour(ctx, sqlc.SoftDeleteTourParams{
		OrganizationID: organizationID,
		TourID:         tourID,
		UpdatedBy:      &deletedBy,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *tourStore) ListByOrganization(ctx context.Context, organizationID int64) ([]model.Tour, error) {
	rows, err := s.queries.ListToursByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toTourModels(rows), nil
}

func toTourModel(row sqlc.Tour) *model.Tour {
	return &model.Tour{
		ID:             row.ID,
		TourID:         row.TourID,
		OrganizationID: row.OrganizationID,
		TourData:       row.TourData,
		Status:         model.TourStatus(row.Status),
		CreatedBy:      row.CreatedBy,
		UpdatedBy:      row.UpdatedBy,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toTourModels(rows []sqlc.Tour) []model.Tour {
	result := make([]model.Tour, len(rows))
	for i, row := range rows {
		result[i] = *toTourModel(row)
	}
	return result
}
