package usecase

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/mocks"
	"ecommerce-auth/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	accounts      *mocks.MockAccountRepository
	mobiles       *mocks.MockMobileRepository
	verifications *mocks.MockVerificationRepository
	resets        *mocks.MockPasswordResetRepository
	sessions      *mocks.MockSessionRepository
	sms           *mocks.MockSMSSender
	repo          *repository.Repository
	config        *utils.Config
	jwt           *utils.JWTManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:           strings.Repeat("s", 48),
			Issuer:           "ecommerce-v1.0.0",
			Audience:         "api-v1.0.0",
			AccessTTLMinutes: 60,
		},
		Session: utils.SessionConfig{TTLHours: 24 * 365, CookieName: "sid", CookieMaxAgeSeconds: 604800},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10, Length: 6, ResetExpiryMinutes: 10},
	}

	f := &fixture{
		accounts:      mocks.NewMockAccountRepository(),
		mobiles:       mocks.NewMockMobileRepository(),
		verifications: mocks.NewMockVerificationRepository(),
		resets:        mocks.NewMockPasswordResetRepository(),
		sessions:      mocks.NewMockSessionRepository(),
		sms:           mocks.NewMockSMSSender(),
		config:        config,
		jwt:           utils.NewJWTManager(config.JWT),
	}
	f.repo = &repository.Repository{
		Account:       f.accounts,
		Mobile:        f.mobiles,
		Verification:  f.verifications,
		PasswordReset: f.resets,
		Session:       f.sessions,
	}
	return f
}

func (f *fixture) service() *Service {
	return NewService(f.repo, f.jwt, f.sms, f.config, zap.NewNop())
}

func mustHash(t *testing.T, value string) string {
	t.Helper()
	hash, err := utils.HashPassword(value)
	require.NoError(t, err)
	return hash
}

func activeAccount(t *testing.T, password string) *entity.Account {
	t.Helper()
	now := time.Now()
	return &entity.Account{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Status:       entity.AccountStatusActive,
		Type:         entity.AccountTypeCustomer,
		Groups:       []string{entity.GroupCustomer},
		PasswordHash: mustHash(t, password),
	}
}

func primaryMobile(accountID uuid.UUID) *entity.Mobile {
	now := time.Now()
	return &entity.Mobile{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		AccountID:       accountID,
		CountryCode:     "880",
		Number:          "1955898711",
		FormattedNumber: "8801955898711",
		IsPrimary:       true,
		VerifiedAt:      &now,
	}
}

func requireAppError(t *testing.T, err error, status int, code string) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

var (
	statusBadRequest   = http.StatusBadRequest
	statusNotFound     = http.StatusNotFound
	statusConflict     = http.StatusConflict
	statusUnauthorized = http.StatusUnauthorized
)
