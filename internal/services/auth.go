package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"officeweb/internal/domain"
)

type authService struct {
	backend  domain.AdminBackend
	sessions domain.SessionRepository
	tokens   domain.TokenInspector
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewAuthService creates an AuthService that signs in against the backend and
// keeps sessions in the given repository. ttl applies to tokens without an exp claim.
func NewAuthService(backend domain.AdminBackend, sessions domain.SessionRepository, tokens domain.TokenInspector, ttl time.Duration, logger *slog.Logger) domain.AuthService {
	return &authService{
		backend:  backend,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	res, err := s.backend.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrBadRequest) {
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	claims, err := s.tokens.Inspect(res.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect access token: %w", err)
	}

	now := s.now()
	expiresAt := claims.ExpiresAt
	if expiresAt.IsZero() && s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}
	sess := &domain.AuthSession{
		ID:          uuid.NewString(),
		AccessToken: res.AccessToken,
		Admin:       res.Admin,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	s.logger.InfoContext(ctx, "admin logged in", "admin", res.Admin.Username, "expires_at", expiresAt)
	return sess, nil
}

func (s *authService) Current(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete expired session", "err", err)
		}
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// RunSessionSweeper deletes expired sessions every interval until ctx is done.
func RunSessionSweeper(ctx context.Context, sessions domain.SessionRepository, interval time.Duration, logger *slog.Logger) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			n, err := sessions.DeleteExpired(ctx, now)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.ErrorContext(ctx, "session sweep failed", "err", err)
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}
