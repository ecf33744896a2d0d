package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"travelsuite.app/api/common"
	"travelsuite.app/api/common/id"
	"travelsuite.app/api/common/logger"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/queue"
	"travelsuite.app/api/internal/store"
)

// OrganizationInput carries the editable organization fields. Nil optional
// fields keep their current value on update.
type OrganizationInput struct {
	Name        string
	Description *string
	Address     *string
	Website     *string
	Phone       *string
	LogoURL     *string
}

const maxSlugAttempts = 3

var errSlugTaken = errors.New("organization slug taken")

type OrganizationService interface {
	GetForUser(ctx context.Context, userID int64) (*model.Organization, error)
	Create(ctx context.Context, userID int64, input OrganizationInput) (*model.Organization, error)
	Update(ctx context.Context, userID int64, input OrganizationInput) (*model.Organization, error)
}

type organizationService struct {
	orgStore       store.OrganizationStore
	txRunner       TxRunner
	ids            id.Generator
	events         queue.Producer
	defaultLogoURL string
}

func NewOrganizationService(
	orgStore store.OrganizationStore,
	txRunner TxRunner,
	ids id.Generator,
	events queue.Producer,
	defaultLogoURL string,
) OrganizationService {
	return &organizationService{
		orgStore:       orgStore,
		txRunner:       txRunner,
		ids:            ids,
		events:         events,
		defaultLogoURL: defaultLogoURL,
	}
}

func (s *organizationService) GetForUser(ctx context.Context, userID int64) (*model.Organization, error) {
	return organizationForUser(ctx, s.orgStore, userID)
}

// Create inserts the organization and links the caller to it in one
// transaction.
func (s *organizationService) Create(ctx context.Context, userID int64, input OrganizationInput) (*model.Organization, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		Component: "travelsuite.service.organization",
	})

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalidInput("Organization name is required")
	}

	logoURL := trimmedOrNil(input.LogoURL)
	if logoURL == nil && s.defaultLogoURL != "" {
		logoURL = &s.defaultLogoURL
	}

	var (
		org *model.Organization
		err error
	)
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		org, err = s.createLinked(ctx, userID, name, logoURL, input)
		if !errors.Is(err, errSlugTaken) {
			break
		}
		slog.WarnContext(ctx, "organization slug taken concurrently, retrying", "attempt", attempt)
	}
	if errors.Is(err, errSlugTaken) {
		err = ErrOrganizationNameBusy
	}
	if err != nil {
		if KindOf(err) == KindInternal {
			slog.ErrorContext(ctx, "failed to create organization", "error", err)
		}
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: logger.Ptr(org.ID)})
	slog.InfoContext(ctx, "organization created", "slug", org.Slug)
	publish(ctx, s.events, queue.Event{
		Type:           queue.EventOrganizationCreated,
		UserID:         userID,
		OrganizationID: org.ID,
		OccurredAt:     org.CreatedAt,
	})

	return org, nil
}

// createLinked runs one create-and-link transaction. The slug unique index
// firing means another organization took the slug after ensureSlug checked
// it; that attempt is rolled back and reported as errSlugTaken.
func (s *organizationService) createLinked(ctx context.Context, userID int64, name string, logoURL *string, input OrganizationInput) (*model.Organization, error) {
	var org *model.Organization
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		user, err := getUser(ctx, stores.Users(), userID)
		if err != nil {
			return err
		}
		if user.HasOrganization() {
			return ErrOrganizationExists
		}

		slug, err := ensureSlug(ctx, stores.Organizations(), name)
		if err != nil {
			return err
		}

		org = &model.Organization{
			ID:          s.ids.New(),
			Name:        name,
			Slug:        slug,
			Description: trimmedOrNil(input.Description),
			Address:     trimmedOrNil(input.Address),
			Website:     trimmedOrNil(input.Website),
			Phone:       trimmedOrNil(input.Phone),
			LogoURL:     logoURL,
			CreatedBy:   userID,
		}

		if err := stores.Organizations().Create(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return errSlugTaken
			}
			return fmt.Errorf("creating organization: %w", err)
		}

		// Guarded against a concurrent create for the same user that
		// committed after the HasOrganization check above.
		if err := stores.Users().SetOrganization(ctx, userID, org.ID); err != nil {
			switch {
			case errors.Is(err, store.ErrAlreadyExists):
				return ErrOrganizationExists
			case errors.Is(err, store.ErrNotFound):
				return ErrUserNotFound
			}
			return fmt.Errorf("linking user to organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) Update(ctx context.Context, userID int64, input OrganizationInput) (*model.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalidInput("Organization name is required")
	}

	org, err := organizationForUser(ctx, s.orgStore, userID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:         logger.Ptr(userID),
		OrganizationID: logger.Ptr(org.ID),
		Component:      "travelsuite.service.organization",
	})

	org.Name = name
	org.Description = keepOrReplace(org.Description, input.Description)
	org.Address = keepOrReplace(org.Address, input.Address)
	org.Website = keepOrReplace(org.Website, input.Website)
	org.Phone = keepOrReplace(org.Phone, input.Phone)
	org.LogoURL = keepOrReplace(org.LogoURL, input.LogoURL)
	org.UpdatedBy = &userID

	if err := s.orgStore.Update(ctx, org); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		slog.ErrorContext(ctx, "failed to update organization", "error", err)
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	slog.InfoContext(ctx, "organization updated")
	publish(ctx, s.events, queue.Event{
		Type:           queue.EventOrganizationUpdated,
		UserID:         userID,
		OrganizationID: org.ID,
		OccurredAt:     org.UpdatedAt,
	})

	return org, nil
}

func organizationForUser(ctx context.Context, orgStore store.OrganizationStore, userID int64) (*model.Organization, error) {
	org, err := orgStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func ensureSlug(ctx context.Context, orgStore store.OrganizationStore, name string) (string, error) {
	base, err := common.Slugify(name, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	if _, err := orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

func keepOrReplace(current, next *string) *string {
	if next == nil {
		return current
	}
	return trimmedOrNil(next)
}

// publish hands event to the producer. Failures are logged only; the write
// that triggered the event has already committed.
func publish(ctx context.Context, events queue.Producer, event queue.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if err := events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "error", err, "event_type", event.Type)
	}
}
