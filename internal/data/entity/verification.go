package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountVerification struct {
	BaseSimple
	AccountID        uuid.UUID  `db:"account_id"`
	MobileID         uuid.UUID  `db:"mobile_id"`
	VerificationHash string     `db:"verification_hash"`
	ValidTill        time.Time  `db:"valid_till"`
	ConsumedAt       *time.Time `db:"consumed_at"`
}

func (v *AccountVerification) IsConsumed() bool {
	return v.ConsumedAt != nil
}

func (v *AccountVerification) IsExpired(now time.Time) bool {
	return !v.ValidTill.After(now)
}
