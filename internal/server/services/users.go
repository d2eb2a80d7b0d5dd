// Package services contains the forum's business logic. Authentication
// failures never reach this layer; the services here enforce validation,
// the ownership guard, and credential-rotation semantics, always failing
// before any write.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/models"
	"github.com/ftprojects/forum/internal/server/repositories/users"
)

const (
	minUsernameLength = 5
	minPasswordLength = 8
)

// TokenResponse is the payload of a successful login: the bearer token
// and its expiry rendered in the account's timezone.
type TokenResponse struct {
	Token   string
	Expires time.Time
}

// UserService handles registration, login, account mutation, and the
// admin listing. Every credential-altering operation revokes the caller's
// current token exactly once.
type UserService struct {
	users  users.Repository
	tokens *auth.TokenService
	hasher CredentialHasher
}

func NewUserService(repo users.Repository, tokens *auth.TokenService, hasher CredentialHasher) *UserService {
	return &UserService{users: repo, tokens: tokens, hasher: hasher}
}

// Register creates a new USER-role account.
func (s *UserService) Register(ctx context.Context, username, password, timezone string) error {
	if err := s.validateUsername(ctx, username); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if err := validateTimezone(timezone); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.users.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: digest,
		Timezone:     timezone,
		Role:         models.RoleUser,
	})
}

// Login verifies Basic credentials and issues a token. Absent accounts
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading account timezone: %w", err)
	}
	return &TokenResponse{Token: token, Expires: expires.In(loc)}, nil
}

// Users returns all accounts. Admin-only; the role gate runs at the
// routing boundary before this is reached.
func (s *UserService) Users(ctx context.Context) ([]*models.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateUsername renames the current principal and revokes their token,
// since its subject no longer resolves to the account.
func (s *UserService) UpdateUsername(ctx context.Context, username string) error {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.validateUsername(ctx, username); err != nil {
		return err
	}
	if err := s.users.UpdateUsername(ctx, user.ID, username); err != nil {
		return err
	}
	return s.tokens.Invalidate(ctx)
}

// UpdatePassword rotates the current principal's password and revokes
// their token.
func (s *UserService) UpdatePassword(ctx context.Context, password string) error {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, digest); err != nil {
		return err
	}
	return s.tokens.Invalidate(ctx)
}

// Delete removes the current principal's account and revokes their token.
func (s *UserService) Delete(ctx context.Context) error {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	return s.tokens.Invalidate(ctx)
}

// EnsureAdmin seeds the ADMIN account on startup if it does not exist.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password, timezone string) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.users.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: digest,
		Timezone:     timezone,
		Role:         models.RoleAdmin,
	})
}

func (s *UserService) validateUsername(ctx context.Context, username string) error {
	if len(username) < minUsernameLength {
		return common.ErrInvalidUsername
	}
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return common.ErrUserExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return common.ErrInvalidPassword
	}
	return nil
}

func validateTimezone(timezone string) error {
	if timezone == "" {
		return common.ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return common.ErrInvalidTimezone
	}
	return nil
}
