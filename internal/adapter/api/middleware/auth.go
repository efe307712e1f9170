package middleware

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicer/pkg/util"
)

// SessionCookieName is the cookie carrying the session JWT.
const SessionCookieName = "session"

// Session is a middleware factory that returns a new session-auth middleware.
// It requires a valid session JWT cookie on protected routes.
func Session(secretKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				http.Error(w, "Unauthorized: session required", http.StatusUnauthorized)
				return
			}

			if _, err := util.ValidateToken(cookie.Value, secretKey); err != nil {
				logger.Warn("invalid session token", "remote_addr", r.RemoteAddr, "error", err)
				http.Error(w, "Unauthorized: invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
