package locale

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// Param is the query parameter that selects a language.
	Param = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "lang"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
	language.Chinese,
})

// Parse maps a free-form language value ("en", "zh-CN", "ko-KR") to a
// supported Lang.
func Parse(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if l := Lang(strings.ToLower(value)); l.Valid() {
		return l, true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	return match([]language.Tag{tag})
}

func match(tags []language.Tag) (Lang, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

// Negotiate picks the language for a request: the lang query parameter, then
// the lang cookie, then Accept-Language, then Base. The bool reports whether
// the choice came from the query parameter and should be persisted.
func Negotiate(r *http.Request) (Lang, bool) {
	if r == nil {
		return Base, false
	}
	if l, ok := Parse(r.URL.Query().Get(Param)); ok {
		return l, true
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := Parse(c.Value); ok {
			return l, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if l, ok := match(tags); ok {
				return l, false
			}
		}
	}
	return Base, false
}

// SetCookie persists the selected language for a year.
func SetCookie(w http.ResponseWriter, l Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(l),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Option is one entry of the language switcher.
type Option struct {
	Lang   Lang
	Label  string
	URL    string
	Active bool
}

var nativeNames = map[Lang]string{
	Korean:  "한국어",
	English: "English",
	Chinese: "中文",
}

// NativeName returns the language's name in its own script.
func NativeName(l Lang) string {
	if name, ok := nativeNames[l]; ok {
		return name
	}
	return string(l)
}

// Options builds switcher entries that keep the current path and query.
func Options(u *url.URL, active Lang) []Option {
	opts := make([]Option, 0, len(Supported))
	for _, l := range Supported {
		opts = append(opts, Option{
			Lang:   l,
			Label:  NativeName(l),
			URL:    SwitchURL(u, l),
			Active: l == active,
		})
	}
	return opts
}

// SwitchURL returns u with the lang parameter replaced.
func SwitchURL(u *url.URL, l Lang) string {
	path := "/"
	q := url.Values{}
	if u != nil {
		if u.Path != "" {
			path = u.Path
		}
		q = u.Query()
	}
	q.Set(Param, string(l))
	return (&url.URL{Path: path, RawQuery: q.Encode()}).String()
}
