package controllers

import (
	"context"
	"net/http"
	"strconv"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/listing"
)

// ServiceFormView is the model of the service editor. ID is zero for a new service.
type ServiceFormView struct {
	ID      int64
	Service *domain.Service
}

func (c *AdminController) Services(w http.ResponseWriter, r *http.Request) {
	adminList(c, w, r, "admin.services", "admin_services", func(sess *domain.AuthSession) listing.Fetcher[domain.ServiceListItem] {
		return func(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
			return c.Backend.ListAllServices(ctx, sess, p)
		}
	})
}

func (c *AdminController) NewService(w http.ResponseWriter, r *http.Request) {
	c.renderServiceForm(w, r, http.StatusOK, ServiceFormView{Service: &domain.Service{IsPublished: true}}, nil)
}

func (c *AdminController) EditService(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/services")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	svc, err := c.Backend.GetServiceForEdit(r.Context(), sess, id)
	if err != nil {
		c.fail(w, r, err, "/admin/services")
		return
	}
	c.renderServiceForm(w, r, http.StatusOK, ServiceFormView{ID: id, Service: svc}, nil)
}

func (c *AdminController) CreateService(w http.ResponseWriter, r *http.Request) {
	c.saveService(w, r, 0)
}

func (c *AdminController) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/services")
		return
	}
	c.saveService(w, r, id)
}

func (c *AdminController) saveService(w http.ResponseWriter, r *http.Request, id int64) {
	in := serviceInputFromForm(r)
	view := ServiceFormView{ID: id, Service: domain.ServiceFromInput(id, in)}
	if errs := in.Validate(); len(errs) > 0 {
		c.renderServiceForm(w, r, http.StatusBadRequest, view, errs)
		return
	}

	sess, _ := middleware.SessionFromContext(r.Context())
	var err error
	if id == 0 {
		var svc *domain.Service
		svc, err = c.Backend.CreateService(r.Context(), sess, in)
		if err == nil {
			id = svc.ID
		}
	} else {
		_, err = c.Backend.UpdateService(r.Context(), sess, id, in)
	}
	if err != nil {
		if status, _ := helpers.StatusFor(err); status == http.StatusBadRequest {
			c.renderServiceForm(w, r, status, view, []string{err.Error()})
			return
		}
		c.fail(w, r, err, "/admin/services")
		return
	}
	c.Logger.InfoContext(r.Context(), "service saved", "service_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/services?done=saved", http.StatusSeeOther)
}

func (c *AdminController) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(r, "id")
	if !ok {
		notFound(w, r, c.Views, "/admin/services")
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	if err := c.Backend.DeleteService(r.Context(), sess, id); err != nil {
		c.fail(w, r, err, "/admin/services")
		return
	}
	c.Logger.InfoContext(r.Context(), "service deleted", "service_id", id, "admin_id", sess.Admin.ID)
	http.Redirect(w, r, "/admin/services?done=deleted", http.StatusSeeOther)
}

func (c *AdminController) renderServiceForm(w http.ResponseWriter, r *http.Request, status int, view ServiceFormView, errs []string) {
	page := c.Views.NewPage(r, "admin.new")
	if view.ID != 0 {
		page.Title = page.T("admin.edit") + " #" + strconv.FormatInt(view.ID, 10) + " | " + page.T("site.name")
	}
	page.Errors = errs
	page.Data = view
	c.Views.Render(w, r, status, "admin_service_form", page)
}

func serviceInputFromForm(r *http.Request) domain.ServiceInput {
	return domain.ServiceInput{
		TitleKo:       helpers.FormString(r, "title_ko"),
		TitleEn:       helpers.FormOptional(r, "title_en"),
		TitleZh:       helpers.FormOptional(r, "title_zh"),
		DescriptionKo: helpers.FormString(r, "description_ko"),
		DescriptionEn: helpers.FormOptional(r, "description_en"),
		DescriptionZh: helpers.FormOptional(r, "description_zh"),
		Icon:          helpers.FormOptional(r, "icon"),
		IsPublished:   helpers.FormBool(r, "is_published"),
		IsFeatured:    helpers.FormBool(r, "is_featured"),
		Order:         helpers.FormInt(r, "order", 0),
	}
}
