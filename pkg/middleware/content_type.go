package middleware

import (
	"mime"
	"net/http"

	"ecommerce-auth/pkg/utils"
)

var jsonMediaTypes = map[string]bool{
	"application/json":         true,
	"application/vnd.api+json": true,
}

// RequireJSON rejects bodies that are not JSON with 415. GET, OPTIONS and
// DELETE carry no body and pass through.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || !jsonMediaTypes[mediaType] {
			utils.ResponseErrors(w, r, http.StatusUnsupportedMediaType, utils.ErrorObject{
				Status:  http.StatusUnsupportedMediaType,
				Code:    utils.CodeUnsupportedType,
				Title:   "Unsupported Media Type",
				Details: "Content-Type must be application/json or application/vnd.api+json",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
