package backend

import (
	"context"
	"net/http"

	"officeweb/internal/domain"
)

func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	var out domain.LoginResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, sess *domain.AuthSession) (*domain.Admin, error) {
	var out domain.Admin
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: "/auth/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context, sess *domain.AuthSession) (*domain.Dashboard, error) {
	var out domain.Dashboard
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: "/admin/dashboard"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAllPosts(ctx context.Context, sess *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	var out domain.PagedResult[domain.PostListItem]
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: "/admin/posts", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPostForEdit(ctx context.Context, sess *domain.AuthSession, id int64) (*domain.Post, error) {
	var out domain.Post
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: idPath("/posts", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(ctx context.Context, sess *domain.AuthSession, in domain.PostInput) (*domain.Post, error) {
	var out domain.Post
	if err := c.authed(ctx, sess, request{method: http.MethodPost, path: "/posts", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, sess *domain.AuthSession, id int64, in domain.PostInput) (*domain.Post, error) {
	var out domain.Post
	if err := c.authed(ctx, sess, request{method: http.MethodPut, path: idPath("/posts", id, ""), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, sess *domain.AuthSession, id int64) error {
	return c.authed(ctx, sess, request{method: http.MethodDelete, path: idPath("/posts", id, "")}, nil)
}

func (c *Client) ListAllServices(ctx context.Context, sess *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	var out domain.PagedResult[domain.ServiceListItem]
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: "/admin/services", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetServiceForEdit(ctx context.Context, sess *domain.AuthSession, id int64) (*domain.Service, error) {
	var out domain.Service
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: idPath("/services", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, sess *domain.AuthSession, in domain.ServiceInput) (*domain.Service, error) {
	var out domain.Service
	if err := c.authed(ctx, sess, request{method: http.MethodPost, path: "/services", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, sess *domain.AuthSession, id int64, in domain.ServiceInput) (*domain.Service, error) {
	var out domain.Service
	if err := c.authed(ctx, sess, request{method: http.MethodPut, path: idPath("/services", id, ""), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, sess *domain.AuthSession, id int64) error {
	return c.authed(ctx, sess, request{method: http.MethodDelete, path: idPath("/services", id, "")}, nil)
}

func (c *Client) ListAllInquiries(ctx context.Context, sess *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.InquiryDetail], error) {
	var out domain.PagedResult[domain.InquiryDetail]
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: "/admin/contacts", query: pageQuery(p)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInquiryAdmin also marks the inquiry as read on the backend.
func (c *Client) GetInquiryAdmin(ctx context.Context, sess *domain.AuthSession, id int64) (*domain.InquiryDetail, error) {
	var out domain.InquiryDetail
	if err := c.authed(ctx, sess, request{method: http.MethodGet, path: idPath("/admin/contacts", id, "")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReplyInquiry(ctx context.Context, sess *domain.AuthSession, id int64, in domain.ReplyInput) (*domain.InquiryDetail, error) {
	var out domain.InquiryDetail
	if err := c.authed(ctx, sess, request{method: http.MethodPut, path: idPath("/admin/contacts", id, "/reply"), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInquiry(ctx context.Context, sess *domain.AuthSession, id int64) error {
	return c.authed(ctx, sess, request{method: http.MethodDelete, path: idPath("/admin/contacts", id, "")}, nil)
}

// authed attaches the session's bearer token to req.
func (c *Client) authed(ctx context.Context, sess *domain.AuthSession, req request, out any) error {
	tok, err := token(sess)
	if err != nil {
		return err
	}
	req.token = tok
	return c.do(ctx, req, out)
}
