package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ecommerce-auth/pkg/database"
)

var (
	ErrDuplicateMobile      = errors.New("mobile already registered")
	ErrVerificationConsumed = errors.New("verification already consumed")
	ErrResetAlreadyUsed     = errors.New("password reset already used")
)

const uniqueViolation = "23505"

type Repository struct {
	Account       AccountRepository
	Mobile        MobileRepository
	Verification  VerificationRepository
	PasswordReset PasswordResetRepository
	Session       SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:       NewAccountRepository(db, log),
		Mobile:        NewMobileRepository(db, log),
		Verification:  NewVerificationRepository(db, log),
		PasswordReset: NewPasswordResetRepository(db, log),
		Session:       NewSessionRepository(db, log),
	}
}

// UseSessionCache puts a Redis read-through cache in front of session lookups.
func (r *Repository) UseSessionCache(client *redis.Client, log *zap.Logger) {
	r.Session = NewCachedSessionRepository(r.Session, client, log)
}

// withTx runs fn in a transaction; any error from fn rolls it back.
func withTx(ctx context.Context, db database.PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
