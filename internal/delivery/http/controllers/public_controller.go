package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/views"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
)

// HomeView is the model of the landing page.
type HomeView struct {
	Services []domain.ServiceListItem
	Posts    []domain.PostListItem
	Failed   bool
}

// ContactView is the model of the inquiry board and form.
type ContactView struct {
	Board views.List[domain.Inquiry]
	Form  domain.InquiryInput
}

// ContactDetailView is the model of a single public inquiry.
type ContactDetailView struct {
	ID           int64
	Detail       *domain.InquiryDetail
	NeedPassword bool
}

// PublicController serves the visitor-facing pages.
type PublicController struct {
	Logger    *slog.Logger
	Content   domain.ContentBackend
	Inquiries domain.InquiryService
	Views     *views.Renderer
}

// NewPublicController creates a PublicController with the given logger, backend, inquiry service and renderer.
func NewPublicController(logger *slog.Logger, content domain.ContentBackend, inquiries domain.InquiryService, v *views.Renderer) *PublicController {
	return &PublicController{
		Logger:    logger,
		Content:   content,
		Inquiries: inquiries,
		Views:     v,
	}
}

func (c *PublicController) Home(w http.ResponseWriter, r *http.Request) {
	page := c.Views.NewPage(r, "")
	view := HomeView{}
	home, err := c.Content.Home(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		view.Failed = true
	} else {
		view.Services = home.FeaturedServices
		view.Posts = home.LatestPosts
	}
	page.Data = view
	c.Views.Render(w, r, http.StatusOK, "home", page)
}

func (c *PublicController) About(w http.ResponseWriter, r *http.Request) {
	c.Views.Render(w, r, http.StatusOK, "about", c.Views.NewPage(r, "about.title"))
}

func (c *PublicController) Posts(w http.ResponseWriter, r *http.Request) {
	loc := listing.NewLocation(r.URL)
	state, ctl := listing.Load[domain.PostListItem](r.Context(), loc, c.Content.ListPosts, helpers.PostsPageSize, c.Logger)

	page := c.Views.NewPage(r, "posts.title")
	page.Data = views.NewList(state, ctl.PageURL)
	c.Views.Render(w, r, http.StatusOK, "posts", page)
}

func (c *PublicController) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/posts")
		return
	}
	post, err := c.Content.GetPost(r.Context(), id)
	if err != nil {
		renderError(w, r, c.Views, c.Logger, err, "/posts")
		return
	}
	page := c.Views.NewPage(r, "")
	page.Title = page.Field(post, "title") + " | " + page.T("site.name")
	page.Data = post
	c.Views.Render(w, r, http.StatusOK, "post", page)
}

func (c *PublicController) Services(w http.ResponseWriter, r *http.Request) {
	loc := listing.NewLocation(r.URL)
	state, ctl := listing.Load[domain.ServiceListItem](r.Context(), loc, c.Content.ListServices, helpers.ServicesPageSize, c.Logger)

	page := c.Views.NewPage(r, "services.title")
	page.Data = views.NewList(state, ctl.PageURL)
	c.Views.Render(w, r, http.StatusOK, "services", page)
}

func (c *PublicController) Contact(w http.ResponseWriter, r *http.Request) {
	page := c.Views.NewPage(r, "contact.title")
	if r.URL.Query().Get("submitted") == "1" {
		page.Notice = page.T("contact.form.success")
	}
	c.renderContact(w, r, http.StatusOK, page, domain.InquiryInput{})
}

func (c *PublicController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	page := c.Views.NewPage(r, "contact.title")
	if err := r.ParseForm(); err != nil {
		c.Logger.DebugContext(r.Context(), "malformed contact form", "err", err)
		page.Errors = []string{page.T("contact.form.invalid")}
		c.renderContact(w, r, http.StatusBadRequest, page, domain.InquiryInput{})
		return
	}
	in := domain.InquiryInput{
		Name:     helpers.FormString(r, "name"),
		Contact:  helpers.FormString(r, "contact"),
		Message:  helpers.FormString(r, "message"),
		IsSecret: helpers.FormBool(r, "is_secret"),
	}
	if in.IsSecret {
		pw := r.PostFormValue("secret_password")
		in.SecretPassword = &pw
	}

	if errs := in.Validate(); len(errs) > 0 {
		page.Errors = errs
		c.renderContact(w, r, http.StatusBadRequest, page, in)
		return
	}

	if _, err := c.Inquiries.Submit(r.Context(), in); err != nil {
		status, _ := helpers.StatusFor(err)
		if status == http.StatusBadRequest {
			page.Errors = []string{page.T("contact.form.invalid")}
		} else {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			page.Errors = []string{page.T("common.error")}
		}
		c.renderContact(w, r, status, page, in)
		return
	}
	http.Redirect(w, r, "/contact?submitted=1", http.StatusSeeOther)
}

func (c *PublicController) renderContact(w http.ResponseWriter, r *http.Request, status int, page *views.Page, form domain.InquiryInput) {
	form.SecretPassword = nil
	loc := listing.NewLocation(r.URL)
	state, ctl := listing.Load[domain.Inquiry](r.Context(), loc, c.Content.ListInquiries, helpers.InquiryPageSize, c.Logger)
	page.Data = ContactView{
		Board: views.NewList(state, ctl.PageURL),
		Form:  form,
	}
	c.Views.Render(w, r, status, "contact", page)
}

func (c *PublicController) ContactDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/contact")
		return
	}
	detail, err := c.Inquiries.Open(r.Context(), id)
	c.renderDetail(w, r, id, detail, err)
}

func (c *PublicController) VerifyContact(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/contact")
		return
	}
	detail, err := c.Inquiries.Verify(r.Context(), id, r.PostFormValue("password"))
	c.renderDetail(w, r, id, detail, err)
}

func (c *PublicController) renderDetail(w http.ResponseWriter, r *http.Request, id int64, detail *domain.InquiryDetail, err error) {
	page := c.Views.NewPage(r, "contact.title")
	view := ContactDetailView{ID: id, Detail: detail}
	status := http.StatusOK
	switch {
	case err == nil:
		page.Title = detail.Name + " | " + page.T("contact.title") + " | " + page.T("site.name")
	case errors.Is(err, domain.ErrPasswordRequired):
		view.NeedPassword = true
	case errors.Is(err, domain.ErrInvalidPassword):
		view.NeedPassword = true
		page.Error = page.T("contact.detail.invalid_password")
		status = http.StatusUnauthorized
	default:
		renderError(w, r, c.Views, c.Logger, err, "/contact")
		return
	}
	page.Data = view
	c.Views.Render(w, r, status, "contact_detail", page)
}

// NotFound renders the 404 page for unmatched paths.
func (c *PublicController) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, c.Views, "/")
}
