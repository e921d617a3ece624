package adaptor

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"ecommerce-auth/internal/usecase"
	"ecommerce-auth/pkg/utils"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; every payload here is a handful of fields.
const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	Password *PasswordHandler
	Session  *SessionHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config.Session, log),
		Password: NewPasswordHandler(service.Password, log),
		Session:  NewSessionHandler(service.Session, log),
	}
}

// decodeAndValidate writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body")
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseValidation(w, r, validationErrors)
		return false
	}

	return true
}

// handleServiceError renders business failures as-is and hides everything else
// behind a 500 that references the request id.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Warn(operation+" failed", zap.Error(appErr))
		}
		utils.ResponseAppError(w, r, appErr)
		return
	}

	requestID := chiMiddleware.GetReqID(r.Context())
	log.Error(operation+" failed",
		zap.Error(err),
		zap.String("request_id", requestID))
	utils.ResponseInternalError(w, r, requestID)
}

func clientInfo(r *http.Request) usecase.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return usecase.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	}
}
