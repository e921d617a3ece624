package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the payload of the bearer token handed out after authentication.
type AccessClaims struct {
	AuthTime    int64    `json:"auth_time"`
	Roles       []string `json:"roles"`
	SessionID   string   `json:"sid"`
	DeviceID    string   `json:"device_id"`
	Status      string   `json:"status"`
	AccountType string   `json:"actype"`
	jwt.RegisteredClaims
}

// TokenSubject is what a service knows about the account when minting a token.
type TokenSubject struct {
	AccountID   string
	SessionID   string
	Roles       []string
	Status      string
	AccountType string
}

type JWTManager struct {
	secretKey []byte
	issuer    string
	audience  string
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTManager(cfg JWTConfig) *JWTManager {
	return &JWTManager{
		secretKey: []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.AccessTTL(),
		now:       time.Now,
	}
}

// Issue builds claims for subject and signs them.
func (j *JWTManager) Issue(subject TokenSubject) (string, *AccessClaims, error) {
	now := j.now()

	roles := subject.Roles
	if roles == nil {
		roles = []string{}
	}

	claims := &AccessClaims{
		AuthTime:    now.Unix(),
		Roles:       roles,
		SessionID:   subject.SessionID,
		Status:      subject.Status,
		AccountType: subject.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.AccountID,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token, err := j.Generate(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// Generate signs claims with HS512.
func (j *JWTManager) Generate(claims *AccessClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, expiry, issuer and audience.
// Every failure is reported as ErrInvalidToken wrapping the cause.
func (j *JWTManager) Verify(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
