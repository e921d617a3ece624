package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/dto/request"
	"ecommerce-auth/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func signupRequest() *request.SignupRequest {
	return &request.SignupRequest{
		CountryCode:     "880",
		Mobile:          "1955898711",
		FirstName:       "John",
		LastName:        "Doe",
		Password:        "myVery#ardPassword",
		ConfirmPassword: "myVery#ardPassword",
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("registers pending account and returns otp", func(t *testing.T) {
		f := newFixture(t)
		var saved repository.SignupRecords
		f.accounts.SignupFunc = func(_ context.Context, records repository.SignupRecords) error {
			saved = records
			return nil
		}

		resp, err := f.service().Auth.Signup(context.Background(), signupRequest())
		require.NoError(t, err)

		assert.Regexp(t, sixDigits, resp.OTPResponse)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "CUSTOMER", resp.Type)
		assert.Equal(t, "8801955898711", resp.FormattedNumber)
		assert.Equal(t, saved.Verification.ID.String(), resp.Token)
		assert.Equal(t, saved.Account.ID.String(), resp.ID)

		assert.Equal(t, entity.AccountStatusPending, saved.Account.Status)
		assert.Equal(t, []string{entity.GroupCustomer}, saved.Account.Groups)
		assert.True(t, utils.CheckPasswordHash("myVery#ardPassword", saved.Account.PasswordHash))
		assert.True(t, utils.CheckPasswordHash(resp.OTPResponse, saved.Verification.VerificationHash))
		assert.Nil(t, saved.Mobile.VerifiedAt)
		assert.Equal(t, "John Doe", saved.Profile.FullName)
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), saved.Verification.ValidTill, time.Minute)

		sent := f.sms.Messages()
		require.Len(t, sent, 1)
		assert.Equal(t, "8801955898711", sent[0].To)
		assert.Contains(t, sent[0].Message, resp.OTPResponse)
	})

	t.Run("registered mobile conflicts without writes", func(t *testing.T) {
		f := newFixture(t)
		f.mobiles.FindByNumberFunc = func(_ context.Context, _, _ string) (*entity.Mobile, error) {
			return primaryMobile(uuid.New()), nil
		}
		f.accounts.SignupFunc = func(context.Context, repository.SignupRecords) error {
			t.Fatal("signup must not write for a registered mobile")
			return nil
		}

		_, err := f.service().Auth.Signup(context.Background(), signupRequest())
		requireAppError(t, err, statusConflict, utils.CodeConflict)
		assert.Empty(t, f.sms.Messages())
	})

	t.Run("concurrent signup unique violation conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.SignupFunc = func(context.Context, repository.SignupRecords) error {
			return repository.ErrDuplicateMobile
		}

		_, err := f.service().Auth.Signup(context.Background(), signupRequest())
		requireAppError(t, err, statusConflict, utils.CodeConflict)
	})

	t.Run("sms failure does not fail signup", func(t *testing.T) {
		f := newFixture(t)
		f.sms.SendSMSFunc = func(context.Context, string, string) error {
			return errors.New("twilio down")
		}

		resp, err := f.service().Auth.Signup(context.Background(), signupRequest())
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, resp.OTPResponse)
	})

	t.Run("database failure is not an app error", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("connection refused")
		f.mobiles.FindByNumberFunc = func(context.Context, string, string) (*entity.Mobile, error) {
			return nil, boom
		}

		_, err := f.service().Auth.Signup(context.Background(), signupRequest())
		assert.ErrorIs(t, err, boom)
		var appErr *utils.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

type verifySetup struct {
	f            *fixture
	verification *entity.AccountVerification
	account      *entity.Account
	completed    int
	created      []*entity.AuthSession
}

func newVerifySetup(t *testing.T, code string, validTill time.Time) *verifySetup {
	f := newFixture(t)
	account := activeAccount(t, "secret123")
	account.Status = entity.AccountStatusPending

	s := &verifySetup{
		f:       f,
		account: account,
		verification: &entity.AccountVerification{
			BaseSimple:       entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			AccountID:        account.ID,
			MobileID:         uuid.New(),
			VerificationHash: mustHash(t, code),
			ValidTill:        validTill,
		},
	}

	f.verifications.FindByIDFunc = func(_ context.Context, id uuid.UUID) (*entity.AccountVerification, error) {
		if id == s.verification.ID {
			return s.verification, nil
		}
		return nil, nil
	}
	f.verifications.CompleteFunc = func(_ context.Context, v *entity.AccountVerification, at time.Time) error {
		if v.ConsumedAt != nil {
			return repository.ErrVerificationConsumed
		}
		s.completed++
		v.ConsumedAt = &at
		s.account.Status = entity.AccountStatusActive
		return nil
	}
	f.accounts.FindByIDFunc = func(_ context.Context, id uuid.UUID) (*entity.Account, error) {
		if id == s.account.ID {
			return s.account, nil
		}
		return nil, nil
	}
	f.sessions.CreateFunc = func(_ context.Context, session *entity.AuthSession) error {
		s.created = append(s.created, session)
		return nil
	}
	return s
}

func TestAuthService_VerifyAccount(t *testing.T) {
	client := ClientInfo{UserAgent: "test-agent", IPAddress: "10.0.0.1"}

	t.Run("activates account and opens session", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(5*time.Minute))

		resp, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
			Token: s.verification.ID.String(),
			Code:  "123456",
		}, client)
		require.NoError(t, err)

		assert.Equal(t, 1, s.completed)
		require.Len(t, s.created, 1)
		assert.Equal(t, s.created[0].ID.String(), resp.SessionID)
		assert.Equal(t, "access", resp.TokenType)
		assert.Equal(t, "ACTIVE", resp.Account.Status)
		require.NotNil(t, s.created[0].UserAgent)
		assert.Equal(t, "test-agent", *s.created[0].UserAgent)

		claims, err := s.f.jwt.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.SessionID, claims.SessionID)
		assert.Equal(t, s.account.ID.String(), claims.Subject)
		assert.Equal(t, []string{entity.GroupCustomer}, claims.Roles)
	})

	t.Run("wrong code never activates", func(t *testing.T) {
		for _, validTill := range []time.Time{time.Now().Add(5 * time.Minute), time.Now().Add(-time.Minute)} {
			s := newVerifySetup(t, "123456", validTill)

			_, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
				Token: s.verification.ID.String(),
				Code:  "654321",
			}, client)

			requireAppError(t, err, statusBadRequest, utils.CodeInvalidCode)
			assert.Zero(t, s.completed)
			assert.Empty(t, s.created)
			assert.Equal(t, entity.AccountStatusPending, s.account.Status)
		}
	})

	t.Run("expired code fails even when correct", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(-time.Second))

		_, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
			Token: s.verification.ID.String(),
			Code:  "123456",
		}, client)

		appErr := requireAppError(t, err, statusBadRequest, utils.CodeInvalidCode)
		assert.Equal(t, "Invalid or expired code.", appErr.Detail)
		assert.Zero(t, s.completed)
	})

	t.Run("replay after success fails", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(5*time.Minute))
		req := &request.VerifyAccountRequest{Token: s.verification.ID.String(), Code: "123456"}

		_, err := s.f.service().Auth.VerifyAccount(context.Background(), req, client)
		require.NoError(t, err)

		_, err = s.f.service().Auth.VerifyAccount(context.Background(), req, client)
		appErr := requireAppError(t, err, statusBadRequest, utils.CodeInvalidCode)
		assert.Equal(t, "Invalid code.", appErr.Detail)
		assert.Equal(t, 1, s.completed)
		assert.Len(t, s.created, 1)
	})

	t.Run("lost consume race fails", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(5*time.Minute))
		s.f.verifications.CompleteFunc = func(context.Context, *entity.AccountVerification, time.Time) error {
			return repository.ErrVerificationConsumed
		}

		_, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
			Token: s.verification.ID.String(),
			Code:  "123456",
		}, client)
		requireAppError(t, err, statusBadRequest, utils.CodeInvalidCode)
		assert.Empty(t, s.created)
	})

	t.Run("unknown token", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(5*time.Minute))

		_, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
			Token: uuid.NewString(),
			Code:  "123456",
		}, client)
		requireAppError(t, err, statusBadRequest, utils.CodeInvalidCode)
	})

	t.Run("account still inactive after activation", func(t *testing.T) {
		s := newVerifySetup(t, "123456", time.Now().Add(5*time.Minute))
		s.f.verifications.CompleteFunc = func(_ context.Context, v *entity.AccountVerification, at time.Time) error {
			v.ConsumedAt = &at
			return nil
		}

		_, err := s.f.service().Auth.VerifyAccount(context.Background(), &request.VerifyAccountRequest{
			Token: s.verification.ID.String(),
			Code:  "123456",
		}, client)
		appErr := requireAppError(t, err, statusBadRequest, utils.CodeAccountInactive)
		assert.Equal(t, "Something went wrong. Please contact support.", appErr.Detail)
		assert.Empty(t, s.created)
	})
}

type signinSetup struct {
	f       *fixture
	account *entity.Account
	created []*entity.AuthSession
}

func newSigninSetup(t *testing.T, status entity.AccountStatus) *signinSetup {
	f := newFixture(t)
	account := activeAccount(t, "secret123")
	account.Status = status
	mobile := primaryMobile(account.ID)

	s := &signinSetup{f: f, account: account}
	f.mobiles.FindPrimaryByFormattedFunc = func(_ context.Context, formatted string) (*entity.Mobile, error) {
		if formatted == mobile.FormattedNumber {
			return mobile, nil
		}
		return nil, nil
	}
	f.accounts.FindByIDFunc = func(_ context.Context, id uuid.UUID) (*entity.Account, error) {
		if id == account.ID {
			return account, nil
		}
		return nil, nil
	}
	f.sessions.CreateFunc = func(_ context.Context, session *entity.AuthSession) error {
		s.created = append(s.created, session)
		return nil
	}
	return s
}

func TestAuthService_Signin(t *testing.T) {
	client := ClientInfo{IPAddress: "10.0.0.1"}

	t.Run("creates exactly one session bound to the token", func(t *testing.T) {
		s := newSigninSetup(t, entity.AccountStatusActive)

		resp, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
			Identifier: "8801955898711",
			Password:   "secret123",
		}, client)
		require.NoError(t, err)

		require.Len(t, s.created, 1)
		session := s.created[0]
		assert.Equal(t, session.ID.String(), resp.SessionID)
		assert.Equal(t, s.account.ID, session.AccountID)
		assert.Nil(t, session.UserAgent)
		assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), session.ExpiresAt, time.Minute)

		claims, err := s.f.jwt.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, session.ID.String(), claims.SessionID)
		assert.Equal(t, "ACTIVE", claims.Status)
		assert.Equal(t, "CUSTOMER", claims.AccountType)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("accepts a leading plus", func(t *testing.T) {
		s := newSigninSetup(t, entity.AccountStatusActive)

		_, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
			Identifier: "+8801955898711",
			Password:   "secret123",
		}, client)
		require.NoError(t, err)
	})

	t.Run("never succeeds for inactive accounts", func(t *testing.T) {
		for _, status := range []entity.AccountStatus{entity.AccountStatusPending, entity.AccountStatusSuspended} {
			s := newSigninSetup(t, status)

			_, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
				Identifier: "8801955898711",
				Password:   "secret123",
			}, client)
			appErr := requireAppError(t, err, statusBadRequest, utils.CodeAccountInactive)
			assert.Equal(t, "Please verify your account.", appErr.Detail)
			assert.Empty(t, s.created)
		}
	})

	t.Run("wrong or empty password", func(t *testing.T) {
		for _, password := range []string{"wrong-password", ""} {
			s := newSigninSetup(t, entity.AccountStatusActive)

			_, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
				Identifier: "8801955898711",
				Password:   password,
			}, client)
			appErr := requireAppError(t, err, statusBadRequest, utils.CodeInvalidCreds)
			assert.Equal(t, "Invalid Credentials.", appErr.Detail)
			assert.Empty(t, s.created)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		s := newSigninSetup(t, entity.AccountStatusActive)

		_, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
			Identifier: "8800000000000",
			Password:   "secret123",
		}, client)
		requireAppError(t, err, statusBadRequest, utils.CodeInvalidCreds)
	})

	t.Run("mobile without account", func(t *testing.T) {
		s := newSigninSetup(t, entity.AccountStatusActive)
		s.f.accounts.FindByIDFunc = func(context.Context, uuid.UUID) (*entity.Account, error) {
			return nil, nil
		}

		_, err := s.f.service().Auth.Signin(context.Background(), &request.SigninRequest{
			Identifier: "8801955898711",
			Password:   "secret123",
		}, client)
		appErr := requireAppError(t, err, statusBadRequest, utils.CodeBadRequest)
		assert.Equal(t, "Something went wrong.", appErr.Detail)
	})
}
