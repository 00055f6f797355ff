package views

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
	"officeweb/internal/locale"
	"officeweb/internal/pagination"
)

func strPtr(s string) *string { return &s }

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	catalog, err := locale.DefaultCatalog()
	require.NoError(t, err)
	r, err := New(catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return r
}

func newRequest(target string, lang locale.Lang, admin bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := middleware.SetLang(req.Context(), lang)
	if admin {
		ctx = middleware.SetSession(ctx, &domain.AuthSession{ID: "s", Admin: domain.Admin{ID: 1, Username: "manager"}})
	}
	return req.WithContext(ctx)
}

func pageURL(n int) string { return "/list?page=" + strconv.Itoa(n) }

func TestRenderPages(t *testing.T) {
	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	posts := []domain.PostListItem{{ID: 1, TitleKo: "공지", TitleEn: strPtr("Notice"), CreatedAt: domain.NewTimestamp(when)}}
	services := []domain.ServiceListItem{{ID: 2, TitleKo: "비자", DescriptionKo: "설명", Icon: strPtr("Nope")}}
	detail := &domain.InquiryDetail{ID: 3, Name: "Kim", Contact: "kim@example.com", Message: "Hello", AdminReply: strPtr("Hi there"), CreatedAt: domain.NewTimestamp(when)}
	postList := NewList(listing.State[domain.PostListItem]{CurrentPage: 2, TotalPages: 3, Items: posts}, pageURL)

	tests := []struct {
		name     string
		admin    bool
		data     any
		wantBody string
	}{
		{name: "home", data: struct {
			Services []domain.ServiceListItem
			Posts    []domain.PostListItem
			Failed   bool
		}{Services: services, Posts: posts}, wantBody: "Notice"},
		{name: "about", wantBody: "About the office"},
		{name: "posts", data: postList, wantBody: `href="/list?page=3"`},
		{name: "post", data: &domain.Post{ID: 1, TitleKo: "공지", ContentKo: "본문", ContentEn: strPtr("Body text"), CreatedAt: domain.NewTimestamp(when)}, wantBody: "Body text"},
		{name: "services", data: NewList(listing.State[domain.ServiceListItem]{CurrentPage: 1, TotalPages: 1, Items: services}, pageURL), wantBody: "설명"},
		{name: "contact", data: struct {
			Board List[domain.Inquiry]
			Form  domain.InquiryInput
		}{Board: NewList(listing.State[domain.Inquiry]{CurrentPage: 1, TotalPages: 1, Items: []domain.Inquiry{{ID: 3, Name: "Kim", HasReply: true}}}, pageURL)}, wantBody: "Answered"},
		{name: "contact_detail", data: struct {
			ID           int64
			Detail       *domain.InquiryDetail
			NeedPassword bool
		}{ID: 3, Detail: detail}, wantBody: "Hi there"},
		{name: "error", data: struct{ Heading, Message, BackURL string }{Heading: "Page not found.", BackURL: "/"}, wantBody: "Page not found."},
		{name: "admin_login", data: struct{ Next, Username string }{Next: "/admin"}, wantBody: `name="next" value="/admin"`},
		{name: "admin_dashboard", admin: true, data: &domain.Dashboard{
			Stats:          domain.DashboardStats{TotalContacts: 4321},
			RecentPosts:    posts,
			RecentContacts: []domain.InquiryDetail{*detail},
		}, wantBody: "4,321"},
		{name: "admin_posts", admin: true, data: postList, wantBody: "공지"},
		{name: "admin_post_form", admin: true, data: struct {
			ID   int64
			Post *domain.Post
		}{Post: &domain.Post{}}, wantBody: `action="/admin/posts"`},
		{name: "admin_services", admin: true, data: NewList(listing.State[domain.ServiceListItem]{CurrentPage: 1, TotalPages: 1, Items: services}, pageURL), wantBody: "비자"},
		{name: "admin_service_form", admin: true, data: struct {
			ID      int64
			Service *domain.Service
		}{ID: 2, Service: &domain.Service{ID: 2, TitleKo: "비자", Icon: strPtr("Stamp")}}, wantBody: `action="/admin/services/2"`},
		{name: "admin_contacts", admin: true, data: NewList(listing.State[domain.InquiryDetail]{CurrentPage: 1, TotalPages: 1, Items: []domain.InquiryDetail{*detail}}, pageURL), wantBody: "kim@example.com"},
		{name: "admin_contact", admin: true, data: detail, wantBody: `action="/admin/contacts/3/reply"`},
	}
	r := newTestRenderer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, r.Has(tt.name))
			req := newRequest("/x", locale.Lang("en"), tt.admin)
			page := r.NewPage(req, "")
			page.Data = tt.data
			rec := httptest.NewRecorder()
			r.Render(rec, req, http.StatusOK, tt.name, page)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.admin {
				assert.Contains(t, rec.Body.String(), "manager")
			}
		})
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	req := newRequest("/", locale.Base, false)
	rec := httptest.NewRecorder()
	r.Render(rec, req, http.StatusOK, "missing", r.NewPage(req, ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPageField(t *testing.T) {
	r := newTestRenderer(t)
	page := r.NewPage(newRequest("/", locale.Lang("zh"), false), "posts.title")

	item := domain.PostListItem{TitleKo: "공지", TitleZh: strPtr("公告")}
	assert.Equal(t, "公告", page.Field(item, "title"))
	assert.Equal(t, "公告", page.Field(&item, "title"))
	assert.Equal(t, "", page.Field("not a record", "title"))

	svc := domain.ServiceListItem{TitleKo: "비자"}
	assert.Equal(t, "비자", page.Field(svc, "title"))
}

func TestPageActive(t *testing.T) {
	r := newTestRenderer(t)
	page := r.NewPage(newRequest("/posts/4", locale.Base, false), "")
	assert.True(t, page.Active("/posts"))
	assert.False(t, page.Active("/"))
	assert.False(t, page.Active("/post"))
}

func TestNewPager(t *testing.T) {
	t.Run("single page hides the bar", func(t *testing.T) {
		p := NewPager(pagination.NewControl(1, 1), pageURL)
		assert.False(t, p.Visible)
		assert.Empty(t, p.Links)
	})

	t.Run("first page disables prev", func(t *testing.T) {
		p := NewPager(pagination.NewControl(1, 3), pageURL)
		assert.True(t, p.Visible)
		assert.Empty(t, p.PrevURL)
		assert.Equal(t, "/list?page=2", p.NextURL)
		require.Len(t, p.Links, 3)
		assert.True(t, p.Links[0].Current)
		assert.Empty(t, p.Links[0].URL)
		assert.Equal(t, "/list?page=3", p.Links[2].URL)
	})

	t.Run("last page disables next", func(t *testing.T) {
		p := NewPager(pagination.NewControl(3, 3), pageURL)
		assert.Equal(t, "/list?page=2", p.PrevURL)
		assert.Empty(t, p.NextURL)
	})

	t.Run("ellipsis links nowhere", func(t *testing.T) {
		p := NewPager(pagination.NewControl(10, 20), pageURL)
		var gaps int
		for _, l := range p.Links {
			if l.Ellipsis {
				gaps++
				assert.Empty(t, l.URL)
			}
		}
		assert.Equal(t, 2, gaps)
	})
}
