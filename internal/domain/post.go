package domain

import (
	"context"
	"strings"

	"officeweb/internal/locale"
)

// Post is a news article with trilingual title and content.
// swagger:model Post
type Post struct {
	ID           int64      `json:"id"`
	TitleKo      string     `json:"title_ko"`
	TitleEn      *string    `json:"title_en"`
	TitleZh      *string    `json:"title_zh"`
	ContentKo    string     `json:"content_ko"`
	ContentEn    *string    `json:"content_en"`
	ContentZh    *string    `json:"content_zh"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	IsPublic     bool       `json:"is_public"`
	ViewCount    int        `json:"view_count"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at"`
}

// Localized exposes the translatable fields for locale.Resolve.
func (p *Post) Localized() locale.Record {
	return locale.Record{
		"title_ko":   &p.TitleKo,
		"title_en":   p.TitleEn,
		"title_zh":   p.TitleZh,
		"content_ko": &p.ContentKo,
		"content_en": p.ContentEn,
		"content_zh": p.ContentZh,
	}
}

// PostListItem is the list-view projection of a Post.
type PostListItem struct {
	ID           int64     `json:"id"`
	TitleKo      string    `json:"title_ko"`
	TitleEn      *string   `json:"title_en"`
	TitleZh      *string   `json:"title_zh"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	IsPublic     bool      `json:"is_public"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Localized exposes the translatable fields for locale.Resolve.
func (p *PostListItem) Localized() locale.Record {
	return locale.Record{
		"title_ko": &p.TitleKo,
		"title_en": p.TitleEn,
		"title_zh": p.TitleZh,
	}
}

// PostInput is the create/update body for a post.
type PostInput struct {
	TitleKo      string  `json:"title_ko"`
	TitleEn      *string `json:"title_en,omitempty"`
	TitleZh      *string `json:"title_zh,omitempty"`
	ContentKo    string  `json:"content_ko"`
	ContentEn    *string `json:"content_en,omitempty"`
	ContentZh    *string `json:"content_zh,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	IsPublic     bool    `json:"is_public"`
}

// Validate implements Validator.
func (in PostInput) Validate() []string {
	var errs []string
	if strings.TrimSpace(in.TitleKo) == "" {
		errs = append(errs, "title_ko is required")
	}
	if strings.TrimSpace(in.ContentKo) == "" {
		errs = append(errs, "content_ko is required")
	}
	return errs
}

// PostFromInput returns the post an edit form shows after a failed save.
func PostFromInput(id int64, in PostInput) *Post {
	return &Post{
		ID:           id,
		TitleKo:      in.TitleKo,
		TitleEn:      in.TitleEn,
		TitleZh:      in.TitleZh,
		ContentKo:    in.ContentKo,
		ContentEn:    in.ContentEn,
		ContentZh:    in.ContentZh,
		ThumbnailURL: in.ThumbnailURL,
		IsPublic:     in.IsPublic,
	}
}

// HomeData is what the landing page shows.
type HomeData struct {
	FeaturedServices []ServiceListItem `json:"featured_services"`
	LatestPosts      []PostListItem    `json:"latest_posts"`
}

// ContentBackend is the public, unauthenticated side of the REST backend.
type ContentBackend interface {
	Home(ctx context.Context) (*HomeData, error)
	ListPosts(ctx context.Context, p PaginationParams) (*PagedResult[PostListItem], error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	ListServices(ctx context.Context, p PaginationParams) (*PagedResult[ServiceListItem], error)
	FeaturedServices(ctx context.Context, limit int) ([]ServiceListItem, error)
	GetService(ctx context.Context, id int64) (*Service, error)
	ListInquiries(ctx context.Context, p PaginationParams) (*PagedResult[Inquiry], error)
	GetInquiry(ctx context.Context, id int64) (*InquiryDetail, error)
	CreateInquiry(ctx context.Context, in InquiryInput) (*Inquiry, error)
	VerifyInquiry(ctx context.Context, id int64, password string) (*InquiryDetail, error)
	Health(ctx context.Context) error
}
