package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"officeweb/internal/delivery/http/helpers"
	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/icons"
	"officeweb/internal/listing"
	"officeweb/internal/locale"
)

// PostSummary is a post list entry in the request language.
type PostSummary struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	Date         string    `json:"date"`
}

// ServiceSummary is a service card in the request language. Icon is always a
// known identifier.
type ServiceSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsFeatured  bool   `json:"is_featured"`
}

// InquirySummary is a public inquiry board row.
type InquirySummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsSecret  bool      `json:"is_secret"`
	HasReply  bool      `json:"has_reply"`
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
}

// HealthStatus is the body of /healthz.
type HealthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// APIController serves the read-only JSON API.
type APIController struct {
	Logger  *slog.Logger
	Content domain.ContentBackend
}

// NewAPIController creates an APIController with the given logger and backend.
func NewAPIController(logger *slog.Logger, content domain.ContentBackend) *APIController {
	return &APIController{
		Logger:  logger,
		Content: content,
	}
}

// ListPosts godoc
// @Summary List public posts
// @Description Returns one page of public posts localized to the request language, with the pagination bar state
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param lang query string false "Language: ko, en or zh"
// @Success 200 {object} helpers.APIResponse{data=helpers.ListResponse[PostSummary]}
// @Failure 502 {object} helpers.APIResponse
// @Router /api/posts [get]
func (c *APIController) ListPosts(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFromContext(r.Context())
	state := loadList(c, r, c.Content.ListPosts, helpers.PostsPageSize)
	apiList(w, state, func(p domain.PostListItem) PostSummary {
		return PostSummary{
			ID:           p.ID,
			Title:        locale.Resolve(p.Localized(), "title", lang),
			ThumbnailURL: p.ThumbnailURL,
			ViewCount:    p.ViewCount,
			CreatedAt:    p.CreatedAt.Time,
			Date:         locale.FormatDate(p.CreatedAt.Time, lang),
		}
	})
}

// ListServices godoc
// @Summary List published services
// @Description Returns one page of published services localized to the request language
// @Tags services
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param lang query string false "Language: ko, en or zh"
// @Success 200 {object} helpers.APIResponse{data=helpers.ListResponse[ServiceSummary]}
// @Failure 502 {object} helpers.APIResponse
// @Router /api/services [get]
func (c *APIController) ListServices(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFromContext(r.Context())
	state := loadList(c, r, c.Content.ListServices, helpers.ServicesPageSize)
	apiList(w, state, func(s domain.ServiceListItem) ServiceSummary {
		rec := s.Localized()
		return ServiceSummary{
			ID:          s.ID,
			Title:       locale.Resolve(rec, "title", lang),
			Description: locale.Resolve(rec, "description", lang),
			Icon:        string(icons.Resolve(s.IconName()).ID),
			IsFeatured:  s.IsFeatured,
		}
	})
}

// ListInquiries godoc
// @Summary List the inquiry board
// @Description Returns one page of inquiry board rows. Secret inquiries expose only name and dates
// @Tags inquiries
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} helpers.APIResponse{data=helpers.ListResponse[InquirySummary]}
// @Failure 502 {object} helpers.APIResponse
// @Router /api/contacts [get]
func (c *APIController) ListInquiries(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFromContext(r.Context())
	state := loadList(c, r, c.Content.ListInquiries, helpers.InquiryPageSize)
	apiList(w, state, func(q domain.Inquiry) InquirySummary {
		return InquirySummary{
			ID:        q.ID,
			Name:      q.Name,
			IsSecret:  q.IsSecret,
			HasReply:  q.HasReply,
			CreatedAt: q.CreatedAt.Time,
			Date:      locale.FormatDate(q.CreatedAt.Time, lang),
		}
	})
}

// Health godoc
// @Summary Health check
// @Description Reports whether the content backend is reachable
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=HealthStatus}
// @Failure 503 {object} helpers.APIResponse{data=HealthStatus}
// @Router /healthz [get]
func (c *APIController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if err := c.Content.Health(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "backend health check failed", "err", err)
		helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthStatus{Status: "degraded", Backend: "unavailable"})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok", Backend: "ok"})
}

func loadList[T any](c *APIController, r *http.Request, fetch listing.Fetcher[T], size int) listing.State[T] {
	state, _ := listing.Load(r.Context(), listing.NewLocation(r.URL), fetch, size, c.Logger)
	return state
}

// apiList writes a list response. A failed first fetch has nothing to show and
// becomes an error response.
func apiList[T, R any](w http.ResponseWriter, state listing.State[T], fn func(T) R) {
	if state.Err != nil && len(state.Items) == 0 {
		status, code := helpers.StatusFor(state.Err)
		helpers.WriteJSONError(w, status, code, helpers.PublicMessage(status))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.NewListResponse(state, fn))
}
