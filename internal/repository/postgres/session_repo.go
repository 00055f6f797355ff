package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"officeweb/internal/domain"
)

// SessionsSchema creates the admin_sessions table used by SessionRepository.
const SessionsSchema = `
CREATE TABLE IF NOT EXISTS admin_sessions (
	id           TEXT PRIMARY KEY,
	access_token TEXT        NOT NULL,
	admin        JSONB       NOT NULL,
	expires_at   TIMESTAMPTZ NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS admin_sessions_expires_at_idx ON admin_sessions (expires_at);
`

// Migrate creates the tables this package needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, SessionsSchema); err != nil {
		return fmt.Errorf("migrate admin_sessions: %w", err)
	}
	return nil
}

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.AuthSession) error {
	admin, err := json.Marshal(s.Admin)
	if err != nil {
		return fmt.Errorf("encode admin: %w", err)
	}
	query := `
		INSERT INTO admin_sessions (id, access_token, admin, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.DB.ExecContext(ctx, query, s.ID, s.AccessToken, admin, nullTime(s.ExpiresAt), s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: session %s already exists", domain.ErrConflict, s.ID)
		}
		return err
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.AuthSession, error) {
	query := `
		SELECT id, access_token, admin, expires_at, created_at
		FROM admin_sessions
		WHERE id = $1
	`
	s := &domain.AuthSession{}
	var admin []byte
	var expiresAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.AccessToken, &admin, &expiresAt, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(admin, &s.Admin); err != nil {
		return nil, fmt.Errorf("decode admin: %w", err)
	}
	if expiresAt.Valid {
		s.ExpiresAt = expiresAt.Time
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id)
	return err
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
