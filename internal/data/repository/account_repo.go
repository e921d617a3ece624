package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SignupRecords is everything a new registration writes in one transaction.
type SignupRecords struct {
	Account      *entity.Account
	Profile      *entity.Profile
	Mobile       *entity.Mobile
	Verification *entity.AccountVerification
}

type AccountRepository interface {
	Signup(ctx context.Context, records SignupRecords) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

// Signup creates the account, its profile, the unverified mobile and the
// pending verification. A taken mobile number surfaces as ErrDuplicateMobile.
func (r *accountRepository) Signup(ctx context.Context, records SignupRecords) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		a := records.Account
		_, err := tx.Exec(ctx, `
			INSERT INTO accounts (id, status, type, groups, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.Status, a.Type, a.Groups, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}

		p := records.Profile
		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (id, account_id, first_name, last_name, full_name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.AccountID, p.FirstName, p.LastName, p.FullName, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}

		m := records.Mobile
		_, err = tx.Exec(ctx, `
			INSERT INTO mobiles (id, account_id, country_code, mobile, formatted_number,
			                     is_primary, verified_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, m.ID, m.AccountID, m.CountryCode, m.Number, m.FormattedNumber,
			m.IsPrimary, m.VerifiedAt, m.CreatedAt, m.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateMobile
			}
			return fmt.Errorf("insert mobile: %w", err)
		}

		v := records.Verification
		_, err = tx.Exec(ctx, `
			INSERT INTO account_verifications (id, account_id, mobile_id, verification_hash,
			                                   valid_till, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, v.ID, v.AccountID, v.MobileID, v.VerificationHash, v.ValidTill, v.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert verification: %w", err)
		}

		return nil
	})

	if err != nil && !errors.Is(err, ErrDuplicateMobile) {
		r.log.Error("Failed to sign up account",
			zap.Error(err),
			zap.String("account_id", records.Account.ID.String()),
		)
		return fmt.Errorf("failed to sign up account: %w", err)
	}

	return err
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := `
		SELECT id, status, type, groups, password_hash, created_at, updated_at, deleted_at
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Status,
		&account.Type,
		&account.Groups,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) FindProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, account_id, first_name, last_name, full_name, created_at, updated_at
		FROM profiles
		WHERE account_id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&profile.ID,
		&profile.AccountID,
		&profile.FirstName,
		&profile.LastName,
		&profile.FullName,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}
