package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/dto/request"
	"ecommerce-auth/internal/dto/response"
	"ecommerce-auth/pkg/notify"
	"ecommerce-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PasswordService interface {
	RequestReset(ctx context.Context, req *request.RequestResetPasswordRequest) (string, error)
	VerifyResetCode(ctx context.Context, req *request.VerifyResetCodeRequest) (*response.VerifyResetCodeResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type passwordService struct {
	repo   *repository.Repository
	sms    notify.SMSSender
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewPasswordService(
	repo *repository.Repository,
	sms notify.SMSSender,
	config *utils.Config,
	log *zap.Logger,
) PasswordService {
	return &passwordService{
		repo:   repo,
		sms:    sms,
		config: config,
		log:    log.With(zap.String("service", "password")),
		now:    time.Now,
	}
}

// RequestReset creates a PasswordReset for an active account and returns its id.
func (s *passwordService) RequestReset(ctx context.Context, req *request.RequestResetPasswordRequest) (string, error) {
	mobile, err := s.repo.Mobile.FindByNumber(ctx, req.CountryCode, req.Mobile)
	if err != nil {
		return "", err
	}
	if mobile == nil {
		return "", errMobileNotFound()
	}

	account, err := s.repo.Account.FindByID(ctx, mobile.AccountID)
	if err != nil {
		return "", err
	}
	if account == nil || !account.IsActive() {
		return "", errResetInactiveAccount()
	}

	code, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		return "", err
	}

	now := s.now()
	reset := &entity.PasswordReset{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		AccountID:    account.ID,
		MobileID:     mobile.ID,
		Code:         code,
		ExpiresAt:    now.Add(s.config.OTP.ResetExpiry()),
	}

	if err := s.repo.PasswordReset.Create(ctx, reset); err != nil {
		return "", err
	}

	if err := s.sms.SendSMS(ctx, mobile.FormattedNumber, fmt.Sprintf("Your password reset code is %s", code)); err != nil {
		s.log.Warn("Failed to send reset code", zap.Error(err))
	}

	s.log.Info("Password reset requested",
		zap.String("account_id", account.ID.String()),
		zap.String("reset_id", reset.ID.String()))

	return reset.ID.String(), nil
}

// VerifyResetCode checks the code without consuming the reset; it only marks it verified.
func (s *passwordService) VerifyResetCode(ctx context.Context, req *request.VerifyResetCodeRequest) (*response.VerifyResetCodeResponse, error) {
	id, err := uuid.Parse(req.Token)
	if err != nil {
		return nil, errResetCodeNotFound()
	}

	reset, err := s.repo.PasswordReset.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if reset == nil || reset.Used || reset.IsExpired(now) {
		return nil, errResetCodeNotFound()
	}

	if !utils.CodesEqual(reset.Code, req.Code) {
		s.log.Info("Reset code mismatch", zap.String("reset_id", id.String()))
		return nil, errResetCodeMismatch()
	}

	if err := s.repo.PasswordReset.MarkVerified(ctx, reset.ID, now); err != nil {
		if errors.Is(err, repository.ErrResetAlreadyUsed) {
			return nil, errResetCodeNotFound()
		}
		return nil, err
	}

	return &response.VerifyResetCodeResponse{Token: reset.ID.String()}, nil
}

// ResetPassword stores a new password and consumes the reset. A reset succeeds at most once.
func (s *passwordService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	id, err := uuid.Parse(req.Token)
	if err != nil {
		return errResetTokenNotFound()
	}

	reset, err := s.repo.PasswordReset.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reset == nil {
		return errResetTokenNotFound()
	}
	if reset.Used {
		return errResetTokenUsed()
	}

	now := s.now()
	if reset.IsExpired(now) {
		return errResetTokenNotFound()
	}
	if reset.VerifiedAt == nil {
		return errResetNotVerified()
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.PasswordReset.Consume(ctx, reset, passwordHash, now); err != nil {
		if errors.Is(err, repository.ErrResetAlreadyUsed) {
			return errResetTokenUsed()
		}
		return err
	}

	s.log.Info("Password reset", zap.String("account_id", reset.AccountID.String()))
	return nil
}
