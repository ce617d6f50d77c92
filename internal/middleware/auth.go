package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"draftdeck/internal/auth"
	"draftdeck/internal/httputil"
)

// Auth validates the Bearer token on every request and stores the
// authenticated user's ID in the request context. Requests without a valid
// token get a 401 problem response. Apply it to the protected subtree only;
// /health and /auth/* stay outside.
func Auth(tokens *auth.TokenIssuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				logger.Debug("request rejected",
					"path", r.URL.Path,
					"method", r.Method,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}
