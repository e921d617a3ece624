package response

import (
	"time"

	"ecommerce-auth/internal/data/entity"
)

const TokenTypeAccess = "access"

type SignupResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	CountryCode     string    `json:"countryCode"`
	Mobile          string    `json:"mobile"`
	FormattedNumber string    `json:"formattedNumber"`
	Token           string    `json:"token"`
	ValidTill       time.Time `json:"validTill"`
	OTPResponse     string    `json:"otpResponse"`
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	Groups    []string  `json:"groups"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	FullName  string    `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VerifyAccountResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	SessionID   string          `json:"sessionId"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Account     AccountResponse `json:"account"`
}

// SigninResponse carries the bearer token; SessionID feeds the cookie only.
type SigninResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	SessionID string `json:"-"`
}

// AccountToResponse never copies the password hash. profile may be nil.
func AccountToResponse(account *entity.Account, profile *entity.Profile) AccountResponse {
	groups := account.Groups
	if groups == nil {
		groups = []string{}
	}

	resp := AccountResponse{
		ID:        account.ID.String(),
		Status:    string(account.Status),
		Type:      string(account.Type),
		Groups:    groups,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if profile != nil {
		resp.FirstName = profile.FirstName
		resp.LastName = profile.LastName
		resp.FullName = profile.FullName
	}

	return resp
}
