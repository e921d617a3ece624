package usecase

import (
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/pkg/notify"
	"ecommerce-auth/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Password PasswordService
	Session  SessionService
}

func NewService(
	repo *repository.Repository,
	jwt *utils.JWTManager,
	sms notify.SMSSender,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, jwt, sms, config, log),
		Password: NewPasswordService(repo, sms, config, log),
		Session:  NewSessionService(repo, log),
	}
}
