package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventregistration/internal/domain"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_session"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

type contextKey string

const adminKey contextKey = "admin"

// SetAdmin returns a context with the admin session set. Used by auth middleware.
func SetAdmin(ctx context.Context, admin *domain.AdminSession) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// AdminFromContext returns the authenticated admin session from the context, if present.
func AdminFromContext(ctx context.Context) (*domain.AdminSession, bool) {
	admin, ok := ctx.Value(adminKey).(*domain.AdminSession)
	return admin, ok && admin != nil
}

// SetSessionCookie writes the session cookie for token.
func SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAdmin returns a wrapper that validates the session cookie and sets the admin session in the request context.
// If the cookie is missing or invalid, it redirects to the login page and does not call next.
func RequireAdmin(verifier domain.SessionVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			admin, err := verifier.Verify(cookie.Value)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected admin session", "path", r.URL.Path, "err", err)
				ClearSessionCookie(w, r.TLS != nil)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			r = r.WithContext(SetAdmin(r.Context(), admin))
			next(w, r)
		}
	}
}
