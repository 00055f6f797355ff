package locale

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"ko", Korean, true},
		{"EN", English, true},
		{"zh-CN", Chinese, true},
		{"en-GB", English, true},
		{"ko-KR", Korean, true},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        Lang
		wantPersist bool
	}{
		{name: "default", target: "/", want: Korean},
		{name: "query wins", target: "/?lang=zh", cookie: "en", accept: "en-US", want: Chinese, wantPersist: true},
		{name: "invalid query falls to cookie", target: "/?lang=xx-invalid!", cookie: "en", want: English},
		{name: "cookie before header", target: "/", cookie: "zh", accept: "en-US,en;q=0.9", want: Chinese},
		{name: "accept-language", target: "/", accept: "en-US,en;q=0.9,ko;q=0.5", want: English},
		{name: "accept-language chinese", target: "/", accept: "zh-CN,zh;q=0.9", want: Chinese},
		{name: "unsupported accept-language", target: "/", accept: "fr-FR", want: Korean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://test"+tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			got, persist := Negotiate(r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPersist, persist)
		})
	}
}

func TestSetCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetCookie(rr, English)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestOptions(t *testing.T) {
	u, err := url.Parse("/posts?page=3&lang=ko")
	require.NoError(t, err)

	opts := Options(u, English)
	require.Len(t, opts, 3)
	assert.Equal(t, "한국어", opts[0].Label)
	assert.False(t, opts[0].Active)
	assert.True(t, opts[1].Active)
	assert.Equal(t, "/posts?lang=en&page=3", opts[1].URL)
	assert.Equal(t, "/posts?lang=zh&page=3", opts[2].URL)
}
