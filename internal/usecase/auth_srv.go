package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	VerifyAccount(ctx context.Context, req *request.VerifyAccountRequest, client ClientInfo) (*response.VerifyAccountResponse, error)
	Signin(ctx context.Context, req *request.SigninRequest, client ClientInfo) (*response.SigninResponse, error)
}

type authService struct {
	repo     *repository.Repository
	sessions *sessionIssuer
	sms      notify.SMSSender
	config   *utils.Config
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	jwt *utils.JWTManager,
	sms notify.SMSSender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		sessions: newSessionIssuer(repo.Session, jwt, config.Session.TTL(), time.Now),
		sms:      sms,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
		now:      time.Now,
	}
}

// Signup registers a PENDING account and returns the verification token
// together with the OTP that activates it.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	// 1. Reject a mobile that is already registered
	existing, err := s.repo.Mobile.FindByNumber(ctx, req.CountryCode, req.Mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Info("Signup with registered mobile", zap.String("country_code", req.CountryCode))
		return nil, errMobileTaken()
	}

	// 2. Hash password and a fresh OTP
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		return nil, err
	}
	otpHash, err := utils.HashPassword(otp)
	if err != nil {
		return nil, fmt.Errorf("failed to hash otp: %w", err)
	}

	// 3. Build the records written in one transaction
	now := s.now()
	accountID := uuid.New()
	mobileID := uuid.New()

	account := &entity.Account{
		Base:         entity.NewBase(accountID, now),
		Status:       entity.AccountStatusPending,
		Type:         entity.AccountTypeCustomer,
		Groups:       []string{entity.GroupCustomer},
		PasswordHash: passwordHash,
	}
	profile := &entity.Profile{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		AccountID:    accountID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FullName:     strings.TrimSpace(req.FirstName + " " + req.LastName),
	}
	mobile := &entity.Mobile{
		Base:            entity.NewBase(mobileID, now),
		AccountID:       accountID,
		CountryCode:     req.CountryCode,
		Number:          req.Mobile,
		FormattedNumber: entity.FormatNumber(req.CountryCode, req.Mobile),
		IsPrimary:       true,
	}
	verification := &entity.AccountVerification{
		BaseSimple:       entity.NewBaseSimple(now),
		AccountID:        accountID,
		MobileID:         mobileID,
		VerificationHash: otpHash,
		ValidTill:        now.Add(s.config.OTP.Expiry()),
	}

	// 4. Persist
	err = s.repo.Account.Signup(ctx, repository.SignupRecords{
		Account:      account,
		Profile:      profile,
		Mobile:       mobile,
		Verification: verification,
	})
	if errors.Is(err, repository.ErrDuplicateMobile) {
		return nil, errMobileTaken()
	}
	if err != nil {
		return nil, err
	}

	// 5. Deliver the OTP; delivery problems never fail signup
	s.notify(ctx, mobile.FormattedNumber, fmt.Sprintf("Your verification code is %s", otp))

	s.log.Info("Account signed up", zap.String("account_id", accountID.String()))

	return &response.SignupResponse{
		ID:              accountID.String(),
		Status:          string(account.Status),
		Type:            string(account.Type),
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		CountryCode:     mobile.CountryCode,
		Mobile:          mobile.Number,
		FormattedNumber: mobile.FormattedNumber,
		Token:           verification.ID.String(),
		ValidTill:       verification.ValidTill,
		OTPResponse:     otp,
	}, nil
}

// VerifyAccount consumes the signup OTP, activates the account and opens a session.
func (s *authService) VerifyAccount(ctx context.Context, req *request.VerifyAccountRequest, client ClientInfo) (*response.VerifyAccountResponse, error) {
	id, err := uuid.Parse(req.Token)
	if err != nil {
		return nil, errInvalidCode()
	}

	verification, err := s.repo.Verification.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if verification == nil || verification.IsConsumed() {
		return nil, errInvalidCode()
	}

	now := s.now()
	if verification.IsExpired(now) {
		return nil, errInvalidOrExpiredCode()
	}
	if !utils.CheckPasswordHash(req.Code, verification.VerificationHash) {
		s.log.Info("OTP mismatch", zap.String("verification_id", id.String()))
		return nil, errInvalidOrExpiredCode()
	}

	if err := s.repo.Verification.Complete(ctx, verification, now); err != nil {
		if errors.Is(err, repository.ErrVerificationConsumed) {
			return nil, errInvalidCode()
		}
		return nil, err
	}

	account, err := s.repo.Account.FindByID(ctx, verification.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive() {
		s.log.Error("Account not active after verification",
			zap.String("account_id", verification.AccountID.String()))
		return nil, errContactSupport()
	}

	profile, err := s.repo.Account.FindProfile(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	issued, err := s.sessions.issue(ctx, account, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("Account verified",
		zap.String("account_id", account.ID.String()),
		zap.String("session_id", issued.Session.ID.String()))

	return &response.VerifyAccountResponse{
		AccessToken: issued.Token,
		TokenType:   response.TokenTypeAccess,
		SessionID:   issued.Session.ID.String(),
		ExpiresAt:   issued.Claims.ExpiresAt.Time,
		Account:     response.AccountToResponse(account, profile),
	}, nil
}

// Signin authenticates by primary mobile and password.
func (s *authService) Signin(ctx context.Context, req *request.SigninRequest, client ClientInfo) (*response.SigninResponse, error) {
	identifier := strings.TrimPrefix(strings.TrimSpace(req.Identifier), "+")

	mobile, err := s.repo.Mobile.FindPrimaryByFormatted(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if mobile == nil {
		return nil, errInvalidCredentials()
	}

	account, err := s.repo.Account.FindByID(ctx, mobile.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.log.Error("Primary mobile without account", zap.String("mobile_id", mobile.ID.String()))
		return nil, errSomethingWrong()
	}
	if !account.IsActive() {
		return nil, errVerifyAccount()
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.log.Info("Invalid password", zap.String("account_id", account.ID.String()))
		return nil, errInvalidCredentials()
	}

	issued, err := s.sessions.issue(ctx, account, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("Account signed in",
		zap.String("account_id", account.ID.String()),
		zap.String("session_id", issued.Session.ID.String()))

	return &response.SigninResponse{
		Token:     issued.Token,
		TokenType: response.TokenTypeAccess,
		SessionID: issued.Session.ID.String(),
	}, nil
}

func (s *authService) notify(ctx context.Context, to, message string) {
	if err := s.sms.SendSMS(ctx, to, message); err != nil {
		s.log.Warn("Failed to send SMS", zap.Error(err))
	}
}
