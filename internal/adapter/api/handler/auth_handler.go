package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/user/invoicer/internal/adapter/metrics"
	"github.com/user/invoicer/internal/usecase"
)

// SessionCookieName is the cookie carrying the session JWT.
const SessionCookieName = "session"

// AuthHandler serves the credential sign-in form action.
type AuthHandler struct {
	authUC     *usecase.AuthenticateUseCase
	logger     *slog.Logger
	metrics    *metrics.ActionMetrics
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC *usecase.AuthenticateUseCase, logger *slog.Logger, m *metrics.ActionMetrics, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUC:     authUC,
		logger:     logger,
		metrics:    m,
		sessionTTL: sessionTTL,
	}
}

// Login handles the login form submission. On success it sets the session
// cookie and redirects to the dashboard; classified failures come back as a
// message, anything else surfaces as a server error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, message, err := h.authUC.Authenticate(r.Context(), "", r.PostForm)
	if err != nil {
		h.countAuth("error")
		h.logger.Error("sign-in raised an unclassified error", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if message != "" {
		h.countAuth("invalid_credentials")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": message})
		return
	}

	h.countAuth("success")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/dashboard/invoices", http.StatusSeeOther)
}

func (h *AuthHandler) countAuth(outcome string) {
	if h.metrics != nil {
		h.metrics.AuthTotal.WithLabelValues(outcome).Inc()
	}
}
