package http

import (
	"net/http"

	"github.com/MKhiriev/novera/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// to an existing user via [service.AuthService.ResolveActiveUser], and stores
// that user in the request context (see [utils.WithUser]) before delegating
// to the next handler.
//
// Any failure is answered with 401 Unauthorized and a
// "WWW-Authenticate: Bearer" header before the handler runs.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without authorization")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveActiveUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token was not accepted")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
