package controllers

import (
	"context"
	"net/http"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
)

func (c *AdminController) Contacts(w http.ResponseWriter, r *http.Request) {
	adminList(c, w, r, "admin.contacts", "admin_contacts", func(sess *domain.AuthSession) listing.Fetcher[domain.InquiryDetail] {
		return func(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.InquiryDetail], error) {
			return c.Backend.ListAllInquiries(ctx, sess, p)
		}
	})
}

func (c *AdminController) Contact(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/contacts")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	detail, err := c.Backend.GetInquiryAdmin(r.Context(), sess, id)
	if err != nil {
		c.fail(w, r, err, "/admin/contacts")
		return
	}
	c.renderContact(w, r, http.StatusOK, detail, nil)
}

func (c *AdminController) ReplyContact(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/contacts")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	in := domain.ReplyInput{
		AdminReply:    helpers.FormString(r, "admin_reply"),
		ReplyIsPublic: helpers.FormBool(r, "reply_is_public"),
	}

	if _, err := c.Inquiries.Reply(r.Context(), sess, id, in); err != nil {
		status, _ := helpers.StatusFor(err)
		if status != http.StatusBadRequest {
			c.fail(w, r, err, "/admin/contacts")
			return
		}
		detail, gerr := c.Backend.GetInquiryAdmin(r.Context(), sess, id)
		if gerr != nil {
			c.fail(w, r, gerr, "/admin/contacts")
			return
		}
		errs := in.Validate()
		if len(errs) == 0 {
			errs = []string{err.Error()}
		}
		c.renderContact(w, r, status, detail, errs)
		return
	}
	c.Logger.InfoContext(r.Context(), "inquiry answered", "inquiry_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/contacts?done=saved", http.StatusSeeOther)
}

func (c *AdminController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/contacts")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	if err := c.Backend.DeleteInquiry(r.Context(), sess, id); err != nil {
		c.fail(w, r, err, "/admin/contacts")
		return
	}
	c.Logger.InfoContext(r.Context(), "inquiry deleted", "inquiry_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/contacts?done=deleted", http.StatusSeeOther)
}

func (c *AdminController) renderContact(w http.ResponseWriter, r *http.Request, status int, detail *domain.InquiryDetail, errs []string) {
	page := c.Views.NewPage(r, "admin.contacts")
	page.Title = detail.Name + " | " + page.T("admin.contacts")
	page.Errors = errs
	page.Data = detail
	c.Views.Render(w, r, status, "admin_contact", page)
}
