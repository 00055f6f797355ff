package domain

import (
	"context"
	"time"
)

// Admin is an office staff account on the backend.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt Timestamp `json:"created_at"`
}

// LoginResult is the backend's response to a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Admin       Admin  `json:"admin"`
}

// AuthSession is a signed-in admin. It is created by AuthService.Login,
// carried in the request context by middleware, and passed explicitly to
// every AdminBackend call.
type AuthSession struct {
	ID          string
	AccessToken string
	Admin       Admin
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s *AuthSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// TokenClaims are the fields read from a backend access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenInspector reads claims from a backend access token.
type TokenInspector interface {
	Inspect(token string) (TokenClaims, error)
}

// SessionRepository stores admin sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *AuthSession) error
	GetByID(ctx context.Context, id string) (*AuthSession, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuthService signs admins in and out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthSession, error)
	Current(ctx context.Context, sessionID string) (*AuthSession, error)
	Logout(ctx context.Context, sessionID string) error
}

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalPosts        int `json:"total_posts"`
	PublicPosts       int `json:"public_posts"`
	TotalContacts     int `json:"total_contacts"`
	UnreadContacts    int `json:"unread_contacts"`
	UnrepliedContacts int `json:"unreplied_contacts"`
	TotalServices     int `json:"total_services"`
	PublishedServices int `json:"published_services"`
	FeaturedServices  int `json:"featured_services"`
}

// Dashboard is the admin landing page data.
type Dashboard struct {
	Stats          DashboardStats  `json:"stats"`
	RecentPosts    []PostListItem  `json:"recent_posts"`
	RecentContacts []InquiryDetail `json:"recent_contacts"`
}

// AdminBackend is the authenticated side of the REST backend.
type AdminBackend interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Me(ctx context.Context, sess *AuthSession) (*Admin, error)
	Dashboard(ctx context.Context, sess *AuthSession) (*Dashboard, error)

	ListAllPosts(ctx context.Context, sess *AuthSession, p PaginationParams) (*PagedResult[PostListItem], error)
	GetPostForEdit(ctx context.Context, sess *AuthSession, id int64) (*Post, error)
	CreatePost(ctx context.Context, sess *AuthSession, in PostInput) (*Post, error)
	UpdatePost(ctx context.Context, sess *AuthSession, id int64, in PostInput) (*Post, error)
	DeletePost(ctx context.Context, sess *AuthSession, id int64) error

	ListAllServices(ctx context.Context, sess *AuthSession, p PaginationParams) (*PagedResult[ServiceListItem], error)
	GetServiceForEdit(ctx context.Context, sess *AuthSession, id int64) (*Service, error)
	CreateService(ctx context.Context, sess *AuthSession, in ServiceInput) (*Service, error)
	UpdateService(ctx context.Context, sess *AuthSession, id int64, in ServiceInput) (*Service, error)
	DeleteService(ctx context.Context, sess *AuthSession, id int64) error

	ListAllInquiries(ctx context.Context, sess *AuthSession, p PaginationParams) (*PagedResult[InquiryDetail], error)
	GetInquiryAdmin(ctx context.Context, sess *AuthSession, id int64) (*InquiryDetail, error)
	ReplyInquiry(ctx context.Context, sess *AuthSession, id int64, in ReplyInput) (*InquiryDetail, error)
	DeleteInquiry(ctx context.Context, sess *AuthSession, id int64) error
}
