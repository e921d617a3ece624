package adaptor

import (
	"errors"
	"net/http"

	"ecommerce-auth/internal/usecase"
	"ecommerce-auth/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// CurrentSession handles GET /authentication/current-session
func (h *SessionHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseFailure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	response, err := h.service.CurrentSession(r.Context(), claims)
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Status == http.StatusUnauthorized {
			utils.ResponseFailure(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		handleServiceError(w, r, h.log, err, "current session")
		return
	}

	utils.ResponseSuccess(w, "Successfull", response)
}
