package wire

import (
	"context"
	"net/http"
	"time"

	"ecommerce-auth/internal/adaptor"
	"ecommerce-auth/internal/data/repository"
	"ecommerce-auth/internal/usecase"
	"ecommerce-auth/pkg/middleware"
	"ecommerce-auth/pkg/notify"
	"ecommerce-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from the infrastructure created in main.
func Wiring(
	repo *repository.Repository,
	db Pinger,
	sms notify.SMSSender,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	utils.SetErrorDocsURL(config.App.DocsURL)
	jwt := utils.NewJWTManager(config.JWT)

	service := usecase.NewService(repo, jwt, sms, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router: setupRouter(handler, jwt, db, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	jwt middleware.TokenVerifier,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(middleware.RequireJSON)
	r.Use(middleware.CurrentUser(jwt, logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, r, "The resource does not exist")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseErrors(w, r, http.StatusMethodNotAllowed, utils.ErrorObject{
			Status:  http.StatusMethodNotAllowed,
			Code:    utils.CodeMethodNotAllow,
			Title:   "Method Not Allowed",
			Details: r.Method + " is not supported for this resource",
		})
	})

	// Apply routes
	wireAuth(r, handler)

	r.Get("/health", healthCheck(db, logger))

	return r
}

func healthCheck(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, utils.Response{
				Success: false,
				Message: "Database unavailable",
			})
			return
		}

		utils.ResponseSuccess(w, "OK", nil)
	}
}
