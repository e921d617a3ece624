package entity

import (
	"time"

	"github.com/google/uuid"
)

type PasswordReset struct {
	BaseNoDelete
	AccountID  uuid.UUID  `db:"account_id"`
	MobileID   uuid.UUID  `db:"mobile_id"`
	Code       string     `db:"code"`
	ExpiresAt  time.Time  `db:"expires_at"`
	Used       bool       `db:"used"`
	VerifiedAt *time.Time `db:"verified_at"`
}

func (p *PasswordReset) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}
