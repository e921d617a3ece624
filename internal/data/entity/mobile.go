package entity

import (
	"time"

	"github.com/google/uuid"
)

type Mobile struct {
	Base
	AccountID       uuid.UUID  `db:"account_id"`
	CountryCode     string     `db:"country_code"`
	Number          string     `db:"mobile"`
	FormattedNumber string     `db:"formatted_number"`
	IsPrimary       bool       `db:"is_primary"`
	VerifiedAt      *time.Time `db:"verified_at"`
}

// FormatNumber joins country code and local number the way sign-in identifiers are stored.
func FormatNumber(countryCode, number string) string {
	return countryCode + number
}
