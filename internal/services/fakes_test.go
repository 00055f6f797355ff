package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"officeweb/internal/domain"
)

var errNotImplemented = errors.New("not implemented")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend implements domain.ContentBackend and domain.AdminBackend for tests.
// Only the calls the services make are wired; the rest report errNotImplemented.
type fakeBackend struct {
	loginResult *domain.LoginResult
	loginErr    error

	created      *domain.Inquiry
	createErr    error
	lastCreate   domain.InquiryInput
	detail       *domain.InquiryDetail
	detailErr    error
	lastPassword string

	replied   *domain.InquiryDetail
	replyErr  error
	lastReply domain.ReplyInput
	lastSess  *domain.AuthSession
}

func (f *fakeBackend) Home(context.Context) (*domain.HomeData, error) { return nil, errNotImplemented }
func (f *fakeBackend) ListPosts(context.Context, domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetPost(context.Context, int64) (*domain.Post, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) ListServices(context.Context, domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) FeaturedServices(context.Context, int) ([]domain.ServiceListItem, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetService(context.Context, int64) (*domain.Service, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) ListInquiries(context.Context, domain.PaginationParams) (*domain.PagedResult[domain.Inquiry], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetInquiry(context.Context, int64) (*domain.InquiryDetail, error) {
	return f.detail, f.detailErr
}
func (f *fakeBackend) CreateInquiry(_ context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	f.lastCreate = in
	return f.created, f.createErr
}
func (f *fakeBackend) VerifyInquiry(_ context.Context, _ int64, password string) (*domain.InquiryDetail, error) {
	f.lastPassword = password
	return f.detail, f.detailErr
}
func (f *fakeBackend) Health(context.Context) error { return nil }

func (f *fakeBackend) Login(context.Context, string, string) (*domain.LoginResult, error) {
	return f.loginResult, f.loginErr
}
func (f *fakeBackend) Me(context.Context, *domain.AuthSession) (*domain.Admin, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) Dashboard(context.Context, *domain.AuthSession) (*domain.Dashboard, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) ListAllPosts(context.Context, *domain.AuthSession, domain.PaginationParams) (*domain.PagedResult[domain.PostListItem], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetPostForEdit(context.Context, *domain.AuthSession, int64) (*domain.Post, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) CreatePost(context.Context, *domain.AuthSession, domain.PostInput) (*domain.Post, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) UpdatePost(context.Context, *domain.AuthSession, int64, domain.PostInput) (*domain.Post, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) DeletePost(context.Context, *domain.AuthSession, int64) error {
	return errNotImplemented
}
func (f *fakeBackend) ListAllServices(context.Context, *domain.AuthSession, domain.PaginationParams) (*domain.PagedResult[domain.ServiceListItem], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetServiceForEdit(context.Context, *domain.AuthSession, int64) (*domain.Service, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) CreateService(context.Context, *domain.AuthSession, domain.ServiceInput) (*domain.Service, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) UpdateService(context.Context, *domain.AuthSession, int64, domain.ServiceInput) (*domain.Service, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) DeleteService(context.Context, *domain.AuthSession, int64) error {
	return errNotImplemented
}
func (f *fakeBackend) ListAllInquiries(context.Context, *domain.AuthSession, domain.PaginationParams) (*domain.PagedResult[domain.InquiryDetail], error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) GetInquiryAdmin(context.Context, *domain.AuthSession, int64) (*domain.InquiryDetail, error) {
	return nil, errNotImplemented
}
func (f *fakeBackend) ReplyInquiry(_ context.Context, sess *domain.AuthSession, _ int64, in domain.ReplyInput) (*domain.InquiryDetail, error) {
	f.lastSess = sess
	f.lastReply = in
	return f.replied, f.replyErr
}
func (f *fakeBackend) DeleteInquiry(context.Context, *domain.AuthSession, int64) error {
	return errNotImplemented
}

// fakeEmailService records the notifications it was asked to send.
// With hang set, each send blocks until its context ends.
type fakeEmailService struct {
	received  []*domain.InquiryReceivedEmailData
	replies   []*domain.InquiryReplyEmailData
	deadlines []time.Time
	hang      bool
	err       error
}

func (f *fakeEmailService) SendInquiryReceived(ctx context.Context, data *domain.InquiryReceivedEmailData) error {
	f.received = append(f.received, data)
	return f.wait(ctx)
}

func (f *fakeEmailService) SendInquiryReply(ctx context.Context, data *domain.InquiryReplyEmailData) error {
	f.replies = append(f.replies, data)
	return f.wait(ctx)
}

func (f *fakeEmailService) wait(ctx context.Context) error {
	if d, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, d)
	}
	if f.hang {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

// fakeMailer fails the first failures calls, then succeeds.
type fakeMailer struct {
	mu       sync.Mutex
	failures int
	calls    int
	lastTo   string
}

func (f *fakeMailer) Send(_ context.Context, to, _, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastTo = to
	if f.calls <= f.failures {
		return errors.New("temporary failure")
	}
	return nil
}

type fakeRenderer struct {
	lastTemplate string
	err          error
}

func (f *fakeRenderer) Render(name string, _ any) (string, string, string, error) {
	f.lastTemplate = name
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

type fakeTokenInspector struct {
	claims domain.TokenClaims
	err    error
}

func (f *fakeTokenInspector) Inspect(string) (domain.TokenClaims, error) {
	return f.claims, f.err
}

// fakeSessionRepo is a minimal map-backed domain.SessionRepository.
type fakeSessionRepo struct {
	byID      map[string]*domain.AuthSession
	createErr error
	deleted   []string
	sweeps    int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.AuthSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.AuthSession) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*domain.AuthSession, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(context.Context, time.Time) (int64, error) {
	f.sweeps++
	return 0, nil
}
