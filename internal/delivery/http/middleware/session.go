package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"officeweb/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionCookieName is the cookie that carries the admin session id.
const SessionCookieName = "officeweb_session"

// LoginPath is where RequireSession sends visitors without a session.
const LoginPath = "/admin/login"

// SetSession returns a context with the admin session set. Used by LoadSession.
func SetSession(ctx context.Context, sess *domain.AuthSession) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the signed-in admin's session, if present.
func SessionFromContext(ctx context.Context) (*domain.AuthSession, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.AuthSession)
	return sess, ok && sess != nil
}

// SetSessionCookie writes the session cookie. A session without expiry gets a browser-session cookie.
func SetSessionCookie(w http.ResponseWriter, sess *domain.AuthSession, secure bool) {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if !sess.ExpiresAt.IsZero() {
		c.Expires = sess.ExpiresAt
	}
	http.SetCookie(w, c)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoadSession resolves the session cookie and stores the session in the request
// context. A stale cookie is cleared. It never rejects a request.
func LoadSession(auth domain.AuthService, secure bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := auth.Current(r.Context(), cookie.Value)
			switch {
			case err == nil:
				r = r.WithContext(SetSession(r.Context(), sess))
			case errors.Is(err, domain.ErrSessionNotFound):
				ClearSessionCookie(w, secure)
			default:
				logger.ErrorContext(r.Context(), "failed to load session", "path", r.URL.Path, "method", r.Method, "err", err)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession returns a wrapper that redirects to the login page, with the
// original path in ?next=, when no admin session is present.
func RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				target := LoginPath
				if r.Method == http.MethodGet {
					target += "?next=" + url.QueryEscape(r.URL.RequestURI())
				}
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}
