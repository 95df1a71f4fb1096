package http

import (
	"net/http"

	"github.com/MKhiriev/image-filter/internal/logger"
)

// auth is an HTTP middleware that enforces shared-secret authentication.
//
// It hands the raw "Authorization" header to
// [service.AuthService.ValidateAuthorizationHeader] and delegates to the next
// handler only when the header carries the configured secret.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// {"message": ...} body in the following cases:
//   - The "Authorization" header is absent.
//   - The header does not split on a single space into a scheme and a token.
//   - The token does not equal the shared secret.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if err := h.services.AuthService.ValidateAuthorizationHeader(r.Context(), authHeader); err != nil {
			log.Err(err).Msg("request is not authorized")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
