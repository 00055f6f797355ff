package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"officeweb/internal/domain"
)

var (
	_ domain.ContentBackend = (*Client)(nil)
	_ domain.AdminBackend   = (*Client)(nil)
)

func (c *Client) Home(ctx context.Context) (*domain.HomeData, error) {
	var out domain.HomeData
	if err := c.do(ctx, request{method: http.MethodGet, path: "/home"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPosts(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	var out domain.PagedResult[domain.PostListItem]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/posts", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var out domain.Post
	if err := c.do(ctx, request{method: http.MethodGet, path: idPath("/posts", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListServices(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	var out domain.PagedResult[domain.ServiceListItem]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/services", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FeaturedServices(ctx context.Context, limit int) ([]domain.ServiceListItem, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var out []domain.ServiceListItem
	if err := c.do(ctx, request{method: http.MethodGet, path: "/services/featured", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, request{method: http.MethodGet, path: idPath("/services", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInquiries(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.Inquiry], error) {
	var out domain.PagedResult[domain.Inquiry]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/contacts", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInquiry returns domain.ErrPasswordRequired for secret inquiries.
func (c *Client) GetInquiry(ctx context.Context, id int64) (*domain.InquiryDetail, error) {
	var out domain.InquiryDetail
	err := c.do(ctx, request{method: http.MethodGet, path: idPath("/contacts", id, "")}, &out)
	if err != nil {
		return nil, remap(err, domain.ErrForbidden, domain.ErrPasswordRequired)
	}
	return &out, nil
}

func (c *Client) CreateInquiry(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	var out domain.Inquiry
	if err := c.do(ctx, request{method: http.MethodPost, path: "/contacts", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyInquiry returns domain.ErrInvalidPassword for a wrong password.
func (c *Client) VerifyInquiry(ctx context.Context, id int64, password string) (*domain.InquiryDetail, error) {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	var out domain.InquiryDetail
	err := c.do(ctx, request{method: http.MethodPost, path: idPath("/contacts", id, "/verify"), body: body}, &out)
	if err != nil {
		return nil, remap(err, domain.ErrUnauthorized, domain.ErrInvalidPassword)
	}
	return &out, nil
}

// Health checks the backend's /health endpoint, which sits beside the API
// root rather than under it.
func (c *Client) Health(ctx context.Context) error {
	u := *c.baseURL
	u.Path = "/health"
	u.RawQuery = ""
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Method: http.MethodGet, Path: "/health", Status: resp.StatusCode}
	}
	return nil
}
