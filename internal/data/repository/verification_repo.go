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

type VerificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountVerification, error)
	Complete(ctx context.Context, verification *entity.AccountVerification, at time.Time) error
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountVerification, error) {
	query := `
		SELECT id, account_id, mobile_id, verification_hash, valid_till, consumed_at, created_at
		FROM account_verifications
		WHERE id = $1
	`

	var v entity.AccountVerification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.AccountID,
		&v.MobileID,
		&v.VerificationHash,
		&v.ValidTill,
		&v.ConsumedAt,
		&v.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification",
			zap.Error(err),
			zap.String("verification_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find verification: %w", err)
	}

	return &v, nil
}

// Complete consumes the verification, marks its mobile verified and primary,
// and activates the account. Returns ErrVerificationConsumed when another
// request consumed it first.
func (r *verificationRepository) Complete(ctx context.Context, v *entity.AccountVerification, at time.Time) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE account_verifications
			SET consumed_at = $2
			WHERE id = $1 AND consumed_at IS NULL
		`, v.ID, at)
		if err != nil {
			return fmt.Errorf("consume verification: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrVerificationConsumed
		}

		_, err = tx.Exec(ctx, `
			UPDATE mobiles
			SET verified_at = $2, is_primary = TRUE, updated_at = $2
			WHERE id = $1
		`, v.MobileID, at)
		if err != nil {
			return fmt.Errorf("verify mobile: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE accounts
			SET status = $2, updated_at = $3
			WHERE id = $1
		`, v.AccountID, entity.AccountStatusActive, at)
		if err != nil {
			return fmt.Errorf("activate account: %w", err)
		}

		return nil
	})

	if err != nil && !errors.Is(err, ErrVerificationConsumed) {
		r.log.Error("Failed to complete verification",
			zap.Error(err),
			zap.String("verification_id", v.ID.String()),
		)
		return fmt.Errorf("failed to complete verification: %w", err)
	}

	if err == nil {
		v.ConsumedAt = &at
	}
	return err
}
