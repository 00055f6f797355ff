package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/delivery/http/views"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
)

// LoginView is the model of the sign-in form.
type LoginView struct {
	Next     string
	Username string
}

// AdminController serves the /admin pages. Every handler except the login
// form expects RequireSession in front of it.
type AdminController struct {
	Logger        *slog.Logger
	Auth          domain.AuthService
	Backend       domain.AdminBackend
	Inquiries     domain.InquiryService
	Views         *views.Renderer
	SecureCookies bool
}

// NewAdminController creates an AdminController with the given dependencies.
func NewAdminController(logger *slog.Logger, auth domain.AuthService, backend domain.AdminBackend, inquiries domain.InquiryService, v *views.Renderer, secureCookies bool) *AdminController {
	return &AdminController{
		Logger:        logger,
		Auth:          auth,
		Backend:       backend,
		Inquiries:     inquiries,
		Views:         v,
		SecureCookies: secureCookies,
	}
}

func (c *AdminController) LoginForm(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if _, ok := middleware.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	page := c.Views.NewPage(r, "admin.login.title")
	page.Data = LoginView{Next: next}
	c.Views.Render(w, r, http.StatusOK, "admin_login", page)
}

func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	username := helpers.FormString(r, "username")
	next := safeNext(r.PostFormValue("next"))

	sess, err := c.Auth.Login(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		page := c.Views.NewPage(r, "admin.login.title")
		page.Data = LoginView{Next: next, Username: username}
		status, _ := helpers.StatusFor(err)
		switch status {
		case http.StatusBadRequest, http.StatusUnauthorized:
			page.Error = page.T("admin.login.error")
			status = http.StatusUnauthorized
		default:
			c.Logger.ErrorContext(r.Context(), "admin login failed", "username", username, "err", err)
			page.Error = page.T("common.error")
		}
		c.Views.Render(w, r, status, "admin_login", page)
		return
	}

	c.Logger.InfoContext(r.Context(), "admin signed in", "admin_id", sess.Admin.ID, "username", sess.Admin.Username)
	middleware.SetSessionCookie(w, sess, c.SecureCookies)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := c.Auth.Logout(r.Context(), cookie.Value); err != nil {
			c.Logger.ErrorContext(r.Context(), "failed to delete session", "err", err)
		}
	}
	middleware.ClearSessionCookie(w, c.SecureCookies)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())
	dash, err := c.Backend.Dashboard(r.Context(), sess)
	if err != nil {
		c.fail(w, r, err, "/admin")
		return
	}
	page := c.Views.NewPage(r, "admin.dashboard")
	page.Data = dash
	c.Views.Render(w, r, http.StatusOK, "admin_dashboard", page)
}

// fail handles a backend error on an admin page. A rejected token ends the
// local session and sends the admin back to the login form.
func (c *AdminController) fail(w http.ResponseWriter, r *http.Request, err error, backURL string) {
	if errors.Is(err, domain.ErrUnauthorized) {
		if sess, ok := middleware.SessionFromContext(r.Context()); ok {
			if lerr := c.Auth.Logout(r.Context(), sess.ID); lerr != nil {
				c.Logger.ErrorContext(r.Context(), "failed to delete session", "err", lerr)
			}
		}
		middleware.ClearSessionCookie(w, c.SecureCookies)
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}
	renderError(w, r, c.Views, c.Logger, err, backURL)
}

// adminList renders a paged admin table.
func adminList[T any](c *AdminController, w http.ResponseWriter, r *http.Request, titleKey, name string, fetch func(*domain.AuthSession) listing.Fetcher[T]) {
	sess, _ := middleware.SessionFromContext(r.Context())
	loc := listing.NewLocation(r.URL)
	state, ctl := listing.Load(r.Context(), loc, fetch(sess), helpers.AdminPageSize, c.Logger)
	if state.Err != nil && errors.Is(state.Err, domain.ErrUnauthorized) {
		c.fail(w, r, state.Err, "/admin")
		return
	}
	page := c.Views.NewPage(r, titleKey)
	page.Notice = flash(page, r)
	page.Data = views.NewList(state, ctl.PageURL)
	c.Views.Render(w, r, http.StatusOK, name, page)
}

// flash turns the ?done= marker left by a write redirect into a notice.
func flash(page *views.Page, r *http.Request) string {
	switch r.URL.Query().Get("done") {
	case "saved":
		return page.T("admin.saved")
	case "deleted":
		return page.T("admin.deleted")
	}
	return ""
}

// safeNext keeps post-login redirects inside the admin area.
func safeNext(next string) string {
	if next == "/admin" || strings.HasPrefix(next, "/admin/") || strings.HasPrefix(next, "/admin?") {
		if !strings.HasPrefix(next, middleware.LoginPath) {
			return next
		}
	}
	return "/admin"
}
