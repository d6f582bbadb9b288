// Package users implements the credential store: registration with a salted
// one-way password digest, and credential verification.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/cryptox"
	"github.com/dmitrijs2005/filehub/internal/server/models"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/users"
)

type Service struct {
	repo users.Repository
}

func NewService(repo users.Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user. The plaintext password is digested before
// anything is persisted and is never stored or logged.
func (s *Service) Register(ctx context.Context, email string, password string) (*models.User, error) {

	if email == "" {
		return nil, common.ErrorMissingEmail
	}
	if password == "" {
		return nil, common.ErrorMissingPassword
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	salt := common.GenerateRandByteArray(32)

	user := &models.User{
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
	}

	// The unique index backstops the pre-check under concurrent registration.
	user, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Verify returns the user matching the credentials. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Verify(ctx context.Context, email string, password string) (*models.User, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID backs GET /users/me.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Count backs GET /stats.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
