package response

import (
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/pkg/utils"
)

type SessionResponse struct {
	ID        string    `json:"id"`
	UserAgent *string   `json:"userAgent,omitempty"`
	IPAddress *string   `json:"ipAddress,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type CurrentSessionResponse struct {
	Account AccountResponse     `json:"account"`
	Session SessionResponse     `json:"session"`
	Claims  *utils.AccessClaims `json:"claims"`
}

type VerifyResetCodeResponse struct {
	Token string `json:"token"`
}

func SessionToResponse(session *entity.AuthSession) SessionResponse {
	return SessionResponse{
		ID:        session.ID.String(),
		UserAgent: session.UserAgent,
		IPAddress: session.IPAddress,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}
