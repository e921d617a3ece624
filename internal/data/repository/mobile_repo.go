package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MobileRepository interface {
	FindByNumber(ctx context.Context, countryCode, number string) (*entity.Mobile, error)
	FindPrimaryByFormatted(ctx context.Context, formatted string) (*entity.Mobile, error)
}

type mobileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMobileRepository(db database.PgxIface, log *zap.Logger) MobileRepository {
	return &mobileRepository{
		db:  db,
		log: log.With(zap.String("repository", "mobile")),
	}
}

const mobileColumns = `id, account_id, country_code, mobile, formatted_number,
	is_primary, verified_at, created_at, updated_at, deleted_at`

// FindByNumber matches any stored mobile, verified or not.
func (r *mobileRepository) FindByNumber(ctx context.Context, countryCode, number string) (*entity.Mobile, error) {
	query := `SELECT ` + mobileColumns + `
		FROM mobiles
		WHERE country_code = $1 AND mobile = $2 AND deleted_at IS NULL
	`
	return r.findOne(ctx, "find mobile by number", query, countryCode, number)
}

// FindPrimaryByFormatted matches the primary mobile whether or not it is verified yet;
// callers decide what an unverified account may do.
func (r *mobileRepository) FindPrimaryByFormatted(ctx context.Context, formatted string) (*entity.Mobile, error) {
	query := `SELECT ` + mobileColumns + `
		FROM mobiles
		WHERE formatted_number = $1
		  AND is_primary = TRUE
		  AND deleted_at IS NULL
	`
	return r.findOne(ctx, "find primary mobile", query, formatted)
}

func (r *mobileRepository) findOne(ctx context.Context, op, query string, args ...any) (*entity.Mobile, error) {
	var m entity.Mobile
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&m.ID,
		&m.AccountID,
		&m.CountryCode,
		&m.Number,
		&m.FormattedNumber,
		&m.IsPrimary,
		&m.VerifiedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	return &m, nil
}
