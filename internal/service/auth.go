package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"travelsuite.app/api/common/id"
	"travelsuite.app/api/common/metrics"
	"travelsuite.app/api/internal/auth"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/store"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (auth.Token, error)
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*model.User, error)
	Signin(ctx context.Context, email, password string) (auth.Token, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}

type authService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	tokens    TokenIssuer
	ids       id.Generator
}

func NewAuthService(userStore store.UserStore, hasher auth.PasswordHasher, tokens TokenIssuer, ids id.Generator) AuthService {
	return &authService{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		ids:       ids,
	}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		recordAuthAttempt("signup", "invalid")
		return nil, invalidInput("Email and password are required")
	}
	if err := validatePasswordLength(input.Password); err != nil {
		recordAuthAttempt("signup", "invalid")
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		recordAuthAttempt("signup", "error")
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           s.ids.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    trimmedOrNil(input.FirstName),
		LastName:     trimmedOrNil(input.LastName),
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			recordAuthAttempt("signup", "duplicate")
			return nil, ErrDuplicateEmail
		}
		slog.ErrorContext(ctx, "failed to create user", "error", err)
		recordAuthAttempt("signup", "error")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	recordAuthAttempt("signup", "success")
	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

// Signin returns ErrAuthFailed for both an unknown email and a wrong
// password so callers cannot probe which accounts exist.
func (s *authService) Signin(ctx context.Context, email, password string) (auth.Token, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		recordAuthAttempt("signin", "invalid")
		return auth.Token{}, invalidInput("Email and password are required")
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			recordAuthAttempt("signin", "failed")
			return auth.Token{}, ErrAuthFailed
		}
		recordAuthAttempt("signin", "error")
		return auth.Token{}, fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		recordAuthAttempt("signin", "failed")
		return auth.Token{}, ErrAuthFailed
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		recordAuthAttempt("signin", "error")
		return auth.Token{}, fmt.Errorf("issuing token: %w", err)
	}

	if err := s.userStore.TouchLastLogin(ctx, user.ID); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "error", err, "user_id", user.ID)
	}

	recordAuthAttempt("signin", "success")
	return token, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return getUser(ctx, s.userStore, userID)
}

func getUser(ctx context.Context, users store.UserStore, userID int64) (*model.User, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func recordAuthAttempt(operation, outcome string) {
	metrics.AuthAttemptsTotal.WithLabelValues(operation, outcome).Inc()
}

func validatePasswordLength(password string) error {
	if len(password) > auth.MaxPasswordBytes {
		return invalidInput(fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
