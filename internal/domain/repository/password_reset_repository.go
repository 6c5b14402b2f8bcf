package repository

import (
	"context"

	"coursehub/internal/domain/entity"
)

// PasswordResetRepository persists single-use reset tickets.
type PasswordResetRepository interface {
	Create(ctx context.Context, r *entity.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
}
