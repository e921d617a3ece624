package adaptor

import (
	"net/http"

	"ecommerce-auth/internal/dto/request"
	"ecommerce-auth/internal/usecase"
	"ecommerce-auth/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	cookie  utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookie utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /authentication/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "Signup Successfull", response)
}

// VerifyAccount handles POST /authentication/verify-account
func (h *AuthHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.VerifyAccount(r.Context(), &req, clientInfo(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "verify account")
		return
	}

	utils.ResponseSuccess(w, "Successfull", response)
}

// Signin handles POST /authentication/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req request.SigninRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Signin(r.Context(), &req, clientInfo(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "signin")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    response.SessionID,
		Path:     "/",
		MaxAge:   h.cookie.CookieMaxAgeSeconds,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	utils.ResponseSuccess(w, "Signin successful", response)
}
