package http

import (
	"context"
	"time"

	"officeweb/internal/domain"
)

func strPtr(s string) *string { return &s }

var created = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// fakeContent implements domain.ContentBackend with canned data.
type fakeContent struct {
	err        error
	posts      []domain.PostListItem
	services   []domain.ServiceListItem
	inquiries  []domain.Inquiry
	totalPages int
	lastPage   domain.PaginationParams
	post       *domain.Post
	inquiry    *domain.InquiryDetail
	inquiryErr error
	healthErr  error
}

func paged[T any](items []T, p domain.PaginationParams, totalPages int) *domain.PagedResult[T] {
	if totalPages == 0 {
		totalPages = 1
	}
	return &domain.PagedResult[T]{Items: items, Total: len(items), Page: p.Page, Limit: p.PageSize, TotalPages: totalPages}
}

func (f *fakeContent) Home(context.Context) (*domain.HomeData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.HomeData{FeaturedServices: f.services, LatestPosts: f.posts}, nil
}

func (f *fakeContent) ListPosts(_ context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	f.lastPage = p
	if f.err != nil {
		return nil, f.err
	}
	return paged(f.posts, p, f.totalPages), nil
}

func (f *fakeContent) GetPost(_ context.Context, id int64) (*domain.Post, error) {
	if f.post == nil || f.post.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.post, nil
}

func (f *fakeContent) ListServices(_ context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	f.lastPage = p
	if f.err != nil {
		return nil, f.err
	}
	return paged(f.services, p, f.totalPages), nil
}

func (f *fakeContent) FeaturedServices(context.Context, int) ([]domain.ServiceListItem, error) {
	return f.services, f.err
}

func (f *fakeContent) GetService(context.Context, int64) (*domain.Service, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeContent) ListInquiries(_ context.Context, p domain.PaginationParams) (*domain.PagedResult[domain.Inquiry], error) {
	f.lastPage = p
	if f.err != nil {
		return nil, f.err
	}
	return paged(f.inquiries, p, f.totalPages), nil
}

func (f *fakeContent) GetInquiry(context.Context, int64) (*domain.InquiryDetail, error) {
	return f.inquiry, f.inquiryErr
}

func (f *fakeContent) CreateInquiry(context.Context, domain.InquiryInput) (*domain.Inquiry, error) {
	return &domain.Inquiry{ID: 1}, nil
}

func (f *fakeContent) VerifyInquiry(context.Context, int64, string) (*domain.InquiryDetail, error) {
	return f.inquiry, f.inquiryErr
}

func (f *fakeContent) Health(context.Context) error { return f.healthErr }

// fakeInquiries implements domain.InquiryService and records the last call.
type fakeInquiries struct {
	submitted *domain.InquiryInput
	submitErr error
	detail    *domain.InquiryDetail
	openErr   error
	verifyErr error
	password  string
	replied   *domain.ReplyInput
	replyErr  error
}

func (f *fakeInquiries) Submit(_ context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	f.submitted = &in
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Inquiry{ID: 9, Name: in.Name}, nil
}

func (f *fakeInquiries) Open(context.Context, int64) (*domain.InquiryDetail, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.detail, nil
}

func (f *fakeInquiries) Verify(_ context.Context, _ int64, password string) (*domain.InquiryDetail, error) {
	f.password = password
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.detail, nil
}

func (f *fakeInquiries) Reply(_ context.Context, _ *domain.AuthSession, _ int64, in domain.ReplyInput) (*domain.InquiryDetail, error) {
	f.replied = &in
	if f.replyErr != nil {
		return nil, f.replyErr
	}
	return f.detail, nil
}

// fakeAuth implements domain.AuthService over an in-memory session map.
type fakeAuth struct {
	sessions  map[string]*domain.AuthSession
	loginErr  error
	loggedOut []string
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*domain.AuthSession, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if username != "admin" || password != "secret" {
		return nil, domain.ErrUnauthorized
	}
	sess := &domain.AuthSession{ID: "new-session", AccessToken: "tok", Admin: domain.Admin{ID: 1, Username: username}}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeAuth) Current(_ context.Context, id string) (*domain.AuthSession, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (f *fakeAuth) Logout(_ context.Context, id string) error {
	f.loggedOut = append(f.loggedOut, id)
	delete(f.sessions, id)
	return nil
}

// fakeAdmin implements domain.AdminBackend. err, when set, is returned by every call.
type fakeAdmin struct {
	err       error
	dashboard *domain.Dashboard
	post      *domain.Post
	service   *domain.Service
	inquiry   *domain.InquiryDetail
	savedPost *domain.PostInput
	savedSvc  *domain.ServiceInput
	updatedID int64
	deletedID int64
}

func (f *fakeAdmin) Login(context.Context, string, string) (*domain.LoginResult, error) {
	return nil, domain.ErrUnauthorized
}

func (f *fakeAdmin) Me(_ context.Context, sess *domain.AuthSession) (*domain.Admin, error) {
	return &sess.Admin, f.err
}

func (f *fakeAdmin) Dashboard(context.Context, *domain.AuthSession) (*domain.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

func (f *fakeAdmin) ListAllPosts(_ context.Context, _ *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	if f.err != nil {
		return nil, f.err
	}
	return paged([]domain.PostListItem{{ID: 3, TitleKo: "비공개 글", CreatedAt: domain.NewTimestamp(created)}}, p, 1), nil
}

func (f *fakeAdmin) GetPostForEdit(context.Context, *domain.AuthSession, int64) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func (f *fakeAdmin) CreatePost(_ context.Context, _ *domain.AuthSession, in domain.PostInput) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.savedPost = &in
	return domain.PostFromInput(11, in), nil
}

func (f *fakeAdmin) UpdatePost(_ context.Context, _ *domain.AuthSession, id int64, in domain.PostInput) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.savedPost = &in
	f.updatedID = id
	return domain.PostFromInput(id, in), nil
}

func (f *fakeAdmin) DeletePost(_ context.Context, _ *domain.AuthSession, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeAdmin) ListAllServices(_ context.Context, _ *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	if f.err != nil {
		return nil, f.err
	}
	return paged([]domain.ServiceListItem{{ID: 4, TitleKo: "비자", DescriptionKo: "설명", Icon: strPtr("Plane")}}, p, 1), nil
}

func (f *fakeAdmin) GetServiceForEdit(context.Context, *domain.AuthSession, int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

func (f *fakeAdmin) CreateService(_ context.Context, _ *domain.AuthSession, in domain.ServiceInput) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.savedSvc = &in
	return domain.ServiceFromInput(12, in), nil
}

func (f *fakeAdmin) UpdateService(_ context.Context, _ *domain.AuthSession, id int64, in domain.ServiceInput) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.savedSvc = &in
	f.updatedID = id
	return domain.ServiceFromInput(id, in), nil
}

func (f *fakeAdmin) DeleteService(_ context.Context, _ *domain.AuthSession, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeAdmin) ListAllInquiries(_ context.Context, _ *domain.AuthSession, p domain.PaginationParams) (*domain.PagedResult[domain.InquiryDetail], error) {
	if f.err != nil {
		return nil, f.err
	}
	return paged([]domain.InquiryDetail{{ID: 5, Name: "홍길동", Contact: "hong@example.com", Message: "문의", CreatedAt: domain.NewTimestamp(created)}}, p, 1), nil
}

func (f *fakeAdmin) GetInquiryAdmin(context.Context, *domain.AuthSession, int64) (*domain.InquiryDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.inquiry, nil
}

func (f *fakeAdmin) ReplyInquiry(context.Context, *domain.AuthSession, int64, domain.ReplyInput) (*domain.InquiryDetail, error) {
	return f.inquiry, f.err
}

func (f *fakeAdmin) DeleteInquiry(_ context.Context, _ *domain.AuthSession, id int64) error {
	f.deletedID = id
	return f.err
}
