package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

// Replace upserts the single refresh-token row for a user. user_id is the
// table's primary key, so concurrent logins for the same user serialize
// on that row and the later writer overwrites the earlier one: exactly
// one valid token survives, never zero and never two.
func (r *PgxRefreshTokenRepository) Replace(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	query := `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE
        SET token_hash = EXCLUDED.token_hash,
            expires_at = EXCLUDED.expires_at,
            created_at = EXCLUDED.created_at;
    `
	if _, err := r.Pool.Exec(ctx, query, userID, tokenHash, expiresAt, time.Now()); err != nil {
		return fmt.Errorf("failed to replace refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
        SELECT token_hash, user_id, expires_at, created_at
        FROM refresh_tokens
        WHERE token_hash = $1;
    `
	var t domain.RefreshToken
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(&t.TokenHash, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return &t, nil
}

func (r *PgxRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	return nil
}
