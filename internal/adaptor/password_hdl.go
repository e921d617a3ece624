package adaptor

import (
	"net/http"

	"ecommerce-auth/internal/dto/request"
	"ecommerce-auth/internal/usecase"
	"ecommerce-auth/pkg/utils"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	service usecase.PasswordService
	log     *zap.Logger
}

func NewPasswordHandler(service usecase.PasswordService, log *zap.Logger) *PasswordHandler {
	return &PasswordHandler{
		service: service,
		log:     log.With(zap.String("handler", "password")),
	}
}

// RequestReset handles POST /authentication/request-reset-password
func (h *PasswordHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req request.RequestResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resetID, err := h.service.RequestReset(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "request password reset")
		return
	}

	utils.ResponseSuccess(w, "We've sent you an OTP to reset your password", resetID)
}

// VerifyResetCode handles POST /authentication/verify-reset-code
func (h *PasswordHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyResetCodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.VerifyResetCode(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "verify reset code")
		return
	}

	utils.ResponseSuccess(w, "Code verified successfully", response)
}

// ResetPassword handles POST /authentication/reset-password
func (h *PasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, r, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}
