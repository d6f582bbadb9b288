// Package sessions implements the session authority. Tokens are opaque
// uuid strings stored server-side with a TTL; leaking one exposes at most
// the TTL window, never the credential.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filehub/internal/common"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/sessions"
)

type Service struct {
	repo sessions.Repository
	ttl  time.Duration
}

func NewService(repo sessions.Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

// Create issues a fresh token for userID. A user may hold any number of
// concurrent sessions.
func (s *Service) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	if err := s.repo.Put(ctx, token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}

// Resolve returns the user id behind a live token. Expired, revoked and
// never-issued tokens all resolve the same way: ErrorUnauthorized.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}

	userID, err := s.repo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	return userID, nil
}

// Revoke destroys the session. Revoking an absent token is a no-op.
func (s *Service) Revoke(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
