package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/dto/response"
	"ecommerce-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo describes the caller a session is opened for.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type issuedSession struct {
	Session *entity.AuthSession
	Token   string
	Claims  *utils.AccessClaims
}

// sessionIssuer opens an AuthSession and mints the bearer token bound to it.
// Shared by verify-account and sign-in.
type sessionIssuer struct {
	sessions repository.SessionRepository
	jwt      *utils.JWTManager
	ttl      time.Duration
	now      func() time.Time
}

func newSessionIssuer(sessions repository.SessionRepository, jwt *utils.JWTManager, ttl time.Duration, now func() time.Time) *sessionIssuer {
	return &sessionIssuer{
		sessions: sessions,
		jwt:      jwt,
		ttl:      ttl,
		now:      now,
	}
}

func (i *sessionIssuer) issue(ctx context.Context, account *entity.Account, client ClientInfo) (*issuedSession, error) {
	if !account.IsActive() {
		return nil, errContactSupport()
	}

	now := i.now()
	session := &entity.AuthSession{
		BaseSimple: entity.NewBaseSimple(now),
		AccountID: account.ID,
		UserAgent: optional(client.UserAgent),
		IPAddress: optional(client.IPAddress),
		ExpiresAt: now.Add(i.ttl),
	}

	if err := i.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, claims, err := i.jwt.Issue(utils.TokenSubject{
		AccountID:   account.ID.String(),
		SessionID:   session.ID.String(),
		Roles:       account.Groups,
		Status:      string(account.Status),
		AccountType: string(account.Type),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &issuedSession{Session: session, Token: token, Claims: claims}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type SessionService interface {
	CurrentSession(ctx context.Context, claims *utils.AccessClaims) (*response.CurrentSessionResponse, error)
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
		now:  time.Now,
	}
}

// CurrentSession resolves the account and session behind verified token claims.
// Every way the claims fail to map to a live session is reported as unauthorized.
func (s *sessionService) CurrentSession(ctx context.Context, claims *utils.AccessClaims) (*response.CurrentSessionResponse, error) {
	if claims == nil {
		return nil, errUnauthorized()
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errUnauthorized()
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, errUnauthorized()
	}

	account, err := s.repo.Account.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive() {
		s.log.Debug("Current session without active account", zap.String("account_id", accountID.String()))
		return nil, errUnauthorized()
	}

	session, err := s.repo.Session.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountID != account.ID || session.IsExpired(s.now()) {
		s.log.Debug("Current session not live", zap.String("session_id", sessionID.String()))
		return nil, errUnauthorized()
	}

	profile, err := s.repo.Account.FindProfile(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &response.CurrentSessionResponse{
		Account: response.AccountToResponse(account, profile),
		Session: response.SessionToResponse(session),
		Claims:  claims,
	}, nil
}
