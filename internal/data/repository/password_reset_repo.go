package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PasswordReset, error)
	MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error
	Consume(ctx context.Context, reset *entity.PasswordReset, passwordHash string, at time.Time) error
}

type passwordResetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPasswordResetRepository(db database.PgxIface, log *zap.Logger) PasswordResetRepository {
	return &passwordResetRepository{
		db:  db,
		log: log.With(zap.String("repository", "password_reset")),
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, account_id, mobile_id, code, expires_at,
		                             used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		reset.ID,
		reset.AccountID,
		reset.MobileID,
		reset.Code,
		reset.ExpiresAt,
		reset.Used,
		reset.CreatedAt,
		reset.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create password reset",
			zap.Error(err),
			zap.String("account_id", reset.AccountID.String()),
		)
		return fmt.Errorf("failed to create password reset: %w", err)
	}

	return nil
}

func (r *passwordResetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PasswordReset, error) {
	query := `
		SELECT id, account_id, mobile_id, code, expires_at, used, verified_at,
		       created_at, updated_at
		FROM password_resets
		WHERE id = $1
	`

	var reset entity.PasswordReset
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reset.ID,
		&reset.AccountID,
		&reset.MobileID,
		&reset.Code,
		&reset.ExpiresAt,
		&reset.Used,
		&reset.VerifiedAt,
		&reset.CreatedAt,
		&reset.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find password reset",
			zap.Error(err),
			zap.String("reset_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find password reset: %w", err)
	}

	return &reset, nil
}

func (r *passwordResetRepository) MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE password_resets
		SET verified_at = $2, updated_at = $2
		WHERE id = $1 AND used = FALSE
	`

	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		r.log.Error("Failed to mark password reset verified",
			zap.Error(err),
			zap.String("reset_id", id.String()),
		)
		return fmt.Errorf("failed to mark password reset verified: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrResetAlreadyUsed
	}

	return nil
}

// Consume flips the reset to used and stores the new password hash atomically.
// Returns ErrResetAlreadyUsed when a concurrent request consumed it first.
func (r *passwordResetRepository) Consume(ctx context.Context, reset *entity.PasswordReset, passwordHash string, at time.Time) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE password_resets
			SET used = TRUE, updated_at = $2
			WHERE id = $1 AND used = FALSE
		`, reset.ID, at)
		if err != nil {
			return fmt.Errorf("mark reset used: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrResetAlreadyUsed
		}

		_, err = tx.Exec(ctx, `
			UPDATE accounts
			SET password_hash = $2, updated_at = $3
			WHERE id = $1
		`, reset.AccountID, passwordHash, at)
		if err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		return nil
	})

	if err != nil && !errors.Is(err, ErrResetAlreadyUsed) {
		r.log.Error("Failed to consume password reset",
			zap.Error(err),
			zap.String("reset_id", reset.ID.String()),
		)
		return fmt.Errorf("failed to consume password reset: %w", err)
	}

	if err == nil {
		reset.Used = true
	}
	return err
}
