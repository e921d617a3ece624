package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuthSession struct {
	BaseSimple
	AccountID uuid.UUID `db:"account_id" json:"account_id"`
	UserAgent *string   `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress *string   `db:"ip_address" json:"ip_address,omitempty"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

func (s *AuthSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
