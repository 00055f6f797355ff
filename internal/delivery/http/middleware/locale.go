package middleware

import (
	"context"
	"net/http"

	"officeweb/internal/locale"
)

const langKey contextKey = "lang"

// SetLang returns a context carrying the negotiated language.
func SetLang(ctx context.Context, l locale.Lang) context.Context {
	return context.WithValue(ctx, langKey, l)
}

// LangFromContext returns the negotiated language, or the base language.
func LangFromContext(ctx context.Context) locale.Lang {
	if l, ok := ctx.Value(langKey).(locale.Lang); ok && l.Valid() {
		return l
	}
	return locale.Base
}

// Locale negotiates the request language and remembers an explicit ?lang= choice in a cookie.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, persist := locale.Negotiate(r)
		if persist {
			locale.SetCookie(w, l)
		}
		w.Header().Set("Content-Language", string(l))
		next.ServeHTTP(w, r.WithContext(SetLang(r.Context(), l)))
	})
}
