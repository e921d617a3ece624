package wire

import (
	"ecommerce-auth/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, handler *adaptor.Handler) {
	r.Route("/authentication", func(r chi.Router) {
		// Account lifecycle
		r.Post("/signup", handler.Auth.Signup)
		r.Post("/verify-account", handler.Auth.VerifyAccount)
		r.Post("/signin", handler.Auth.Signin)

		// Principal resolved by the CurrentUser middleware
		r.Get("/current-session", handler.Session.CurrentSession)

		// Password reset
		r.Post("/request-reset-password", handler.Password.RequestReset)
		r.Post("/verify-reset-code", handler.Password.VerifyResetCode)
		r.Post("/reset-password", handler.Password.ResetPassword)
	})
}
