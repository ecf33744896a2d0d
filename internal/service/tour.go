package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"travelsuite.app/api/common/id"
	"travelsuite.app/api/common/logger"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/queue"
	"travelsuite.app/api/internal/store"
)

const maxTourIDLength = 255

// TourService manages the tours of the caller's organization. Every
// operation resolves the organization first; tours belonging to other
// organizations behave exactly like missing ones.
type TourService interface {
	Create(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error)
	Get(ctx context.Context, userID int64, tourID string) (*model.Tour, error)
	Update(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error)
	Delete(ctx context.Context, userID int64, tourID string) error
	List(ctx context.Context, userID int64) ([]model.Tour, error)
}

type tourService struct {
	tourStore store.TourStore
	orgStore  store.OrganizationStore
	ids       id.Generator
	events    queue.Producer
}

func NewTourService(tourStore store.TourStore, orgStore store.OrganizationStore, ids id.Generator, events queue.Producer) TourService {
	return &tourService{
		tourStore: tourStore,
		orgStore:  orgStore,
		ids:       ids,
		events:    events,
	}
}

func (s *tourService) Create(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error) {
	sc := logger.StartSpan(ctx, "service.tour.create")
	defer sc.End()
	ctx = sc.Context()

	tourID, err := validateTourID(tourID)
	if err != nil {
		return nil, err
	}
	if err := validateTourData(data); err != nil {
		return nil, err
	}

	org, ctx, err := s.resolveOrganization(ctx, userID, tourID)
	if err != nil {
		return nil, err
	}

	tour := &model.Tour{
		ID:             s.ids.New(),
		TourID:         tourID,
		OrganizationID: org.ID,
		TourData:       data,
		Status:         model.TourStatusActive,
		CreatedBy:      userID,
	}

	if err := s.tourStore.Create(ctx, tour); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrTourExists
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to create tour", "error", err)
		return nil, fmt.Errorf("creating tour: %w", err)
	}

	slog.InfoContext(ctx, "tour created")
	publish(ctx, s.events, queue.Event{
		Type:           queue.EventTourCreated,
		UserID:         userID,
		OrganizationID: org.ID,
		TourID:         tour.TourID,
		OccurredAt:     tour.CreatedAt,
	})

	return tour, nil
}

func (s *tourService) Get(ctx context.Context, userID int64, tourID string) (*model.Tour, error) {
	tourID, err := validateTourID(tourID)
	if err != nil {
		return nil, err
	}

	org, ctx, err := s.resolveOrganization(ctx, userID, tourID)
	if err != nil {
		return nil, err
	}

	tour, err := s.tourStore.Get(ctx, org.ID, tourID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("getting tour: %w", err)
	}
	return tour, nil
}

func (s *tourService) Update(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error) {
	sc := logger.StartSpan(ctx, "service.tour.update")
	defer sc.End()
	ctx = sc.Context()

	tourID, err := validateTourID(tourID)
	if err != nil {
		return nil, err
	}
	if err := validateTourData(data); err != nil {
		return nil, err
	}

	org, ctx, err := s.resolveOrganization(ctx, userID, tourID)
	if err != nil {
		return nil, err
	}

	tour := &model.Tour{
		TourID:         tourID,
		OrganizationID: org.ID,
		TourData:       data,
		UpdatedBy:      &userID,
	}

	if err := s.tourStore.UpdateData(ctx, tour); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTourNotFound
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to update tour", "error", err)
		return nil, fmt.Errorf("updating tour: %w", err)
	}

	slog.InfoContext(ctx, "tour updated")
	publish(ctx, s.events, queue.Event{
		Type:           queue.EventTourUpdated,
		UserID:         userID,
		OrganizationID: org.ID,
		TourID:         tour.TourID,
		OccurredAt:     tour.UpdatedAt,
	})

	return tour, nil
}

// Delete marks the tour as deleted. The row is kept.
func (s *tourService) Delete(ctx context.Context, userID int64, tourID string) error {
	sc := logger.StartSpan(ctx, "service.tour.delete")
	defer sc.End()
	ctx = sc.Context()

	tourID, err := validateTourID(tourID)
	if err != nil {
		return err
	}

	org, ctx, err := s.resolveOrganization(ctx, userID, tourID)
	if err != nil {
		return err
	}

	if err := s.tourStore.SoftDelete(ctx, org.ID, tourID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTourNotFound
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to delete tour", "error", err)
		return fmt.Errorf("deleting tour: %w", err)
	}

	slog.InfoContext(ctx, "tour deleted")
	publish(ctx, s.events, queue.Event{
		Type:           queue.EventTourDeleted,
		UserID:         userID,
		OrganizationID: org.ID,
		TourID:         tourID,
	})

	return nil
}

func (s *tourService) List(ctx context.Context, userID int64) ([]model.Tour, error) {
	org, ctx, err := s.resolveOrganization(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	tours, err := s.tourStore.ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tours: %w", err)
	}
	return tours, nil
}

// resolveOrganization looks up the caller's organization and returns a
// context carrying user, organization and tour log fields.
func (s *tourService) resolveOrganization(ctx context.Context, userID int64, tourID string) (*model.Organization, context.Context, error) {
	fields := logger.LogFields{
		UserID:    logger.Ptr(userID),
		Component: "travelsuite.service.tour",
	}
	if tourID != "" {
		fields.TourID = logger.Ptr(tourID)
	}
	ctx = logger.WithLogFields(ctx, fields)

	org, err := organizationForUser(ctx, s.orgStore, userID)
	if err != nil {
		return nil, ctx, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: logger.Ptr(org.ID)})
	return org, ctx, nil
}

// validateTourID returns the trimmed tourId. Every operation applies it, so a
// tour created as " t1 " is addressed as "t1".
func validateTourID(tourID string) (string, error) {
	tourID = strings.TrimSpace(tourID)
	if tourID == "" {
		return "", invalidInput("tourId is required")
	}
	if len(tourID) > maxTourIDLength {
		return "", invalidInput("tourId is too long")
	}
	return tourID, nil
}

// validateTourData accepts any JSON object and nothing else.
func validateTourData(data json.RawMessage) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return invalidInput("tourData must be a JSON object")
	}
	return nil
}
