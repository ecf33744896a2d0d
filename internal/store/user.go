package store

import (
	"context"
	"time"

	"travelsuite.app/api/core/db/sqlc"
	"travelsuite.app/api/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translate(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:             user.ID,
		Email:          user.Email,
		HashedPassword: user.PasswordHash,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpdateProfile(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	})
	if err != nil {
		return translate(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	n, err := s.queries.UpdateUserPassword(ctx, sqlc.UpdateUserPasswordParams{
		ID:             id,
		HashedPassword: passwordHash,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetOrganization links a user that has no organization yet. A user that is
// already linked yields ErrAlreadyExists, including one linked by a
// concurrent transaction that committed first.
func (s *userStore) SetOrganization(ctx context.Context, userID, organizationID int64) error {
	n, err := s.queries.SetUserOrganization(ctx, sqlc.SetUserOrganizationParams{
		ID:             userID,
		OrganizationID: &organizationID,
	})
	if err != nil {
		return translate(err)
	}
	if n > 0 {
		return nil
	}
	if _, err := s.queries.GetUser(ctx, userID); err != nil {
		return translate(err)
	}
	return ErrAlreadyExists
}

func (s *userStore) TouchLastLogin(ctx context.Context, id int64) error {
	return s.queries.TouchUserLastLogin(ctx, id)
}

func toUserModel(row sqlc.User) *model.User {
	var lastLogin *time.Time
	if row.LastLoginAt.Valid {
		t := row.LastLoginAt.Time
		lastLogin = &t
	}

	return &model.User{
		ID:              row.ID,
		Email:           row.Email,
		PasswordHash:    row.HashedPassword,
		OrganizationID:  row.OrganizationID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Phone:           row.Phone,
		ProfileImageURL: row.ProfileImageUrl,
		LastLoginAt:     lastLogin,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
