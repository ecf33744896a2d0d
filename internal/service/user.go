package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"travelsuite.app/api/internal/auth"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/store"
)

type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type UserService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

type userService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
}

func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher) UserService {
	return &userService{
		userStore: userStore,
		hasher:    hasher,
	}
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	return getUser(ctx, s.userStore, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (*model.User, error) {
	email := normalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	phone := strings.TrimSpace(input.Phone)
	if email == "" || firstName == "" || lastName == "" || phone == "" {
		return nil, invalidInput("Email, first name, last name and phone are required")
	}

	user, err := getUser(ctx, s.userStore, userID)
	if err != nil {
		return nil, err
	}

	user.Email = email
	user.FirstName = &firstName
	user.LastName = &lastName
	user.Phone = &phone

	if err := s.userStore.UpdateProfile(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return nil, ErrDuplicateEmail
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrUserNotFound
		}
		slog.ErrorContext(ctx, "failed to update profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	slog.InfoContext(ctx, "profile updated", "user_id", userID)
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return invalidInput("Current and new password are required")
	}
	if err := validatePasswordLength(newPassword); err != nil {
		return err
	}

	user, err := getUser(ctx, s.userStore, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(user.PasswordHash, currentPassword) {
		return ErrAuthFailed
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.userStore.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("updating password: %w", err)
	}

	slog.InfoContext(ctx, "password changed", "user_id", userID)
	return nil
}
