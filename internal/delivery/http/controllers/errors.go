package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/views"
	"officeweb/internal/domain"
)

// ErrorView is the model of the error page.
type ErrorView struct {
	Heading string
	Message string
	BackURL string
}

// renderError shows the friendly error page for err. Anything other than a
// missing resource is logged, since it means the backend misbehaved.
func renderError(w http.ResponseWriter, r *http.Request, v *views.Renderer, logger *slog.Logger, err error, backURL string) {
	status, _ := helpers.StatusFor(err)
	page := v.NewPage(r, "common.error")
	view := ErrorView{Heading: page.T("common.error"), BackURL: backURL}
	if errors.Is(err, domain.ErrNotFound) {
		page.SetTitle("common.not_found")
		view.Heading = page.T("common.not_found")
	} else {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	page.Data = view
	v.Render(w, r, status, "error", page)
}

// notFound renders the 404 page without logging.
func notFound(w http.ResponseWriter, r *http.Request, v *views.Renderer, backURL string) {
	renderError(w, r, v, nil, domain.ErrNotFound, backURL)
}
