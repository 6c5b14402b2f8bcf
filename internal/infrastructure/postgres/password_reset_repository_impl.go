package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

type PasswordResetRepository struct {
	pool *pgxpool.Pool
}

func NewPasswordResetRepository(pool *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{pool: pool}
}

func (r *PasswordResetRepository) Create(ctx context.Context, t *entity.PasswordReset) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO password_resets (email, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, t.Email, t.Token, t.ExpiresAt)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return apperr.Wrap(err, "insert password reset")
	}
	return nil
}

func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	t := &entity.PasswordReset{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, token, expires_at, created_at
		FROM password_resets
		WHERE token = $1
	`, token)
	if err := row.Scan(&t.ID, &t.Email, &t.Token, &t.ExpiresAt, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Validation("INVALID_RESET_TOKEN", "Invalid or expired reset token")
		}
		return nil, apperr.Wrap(err, "query password reset")
	}
	return t, nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM password_resets WHERE id = $1`, id); err != nil {
		return apperr.Wrap(err, "delete password reset")
	}
	return nil
}

// DeleteExpired removes stale tickets; called opportunistically by the seed
// binary and safe to run any time.
func (r *PasswordResetRepository) DeleteExpired(ctx context.Context) (int, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM password_resets WHERE expires_at <= now()`)
	if err != nil {
		return 0, apperr.Wrap(err, "delete expired password resets")
	}
	return int(res.RowsAffected()), nil
}

var _ repository.PasswordResetRepository = (*PasswordResetRepository)(nil)
