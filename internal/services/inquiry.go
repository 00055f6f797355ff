package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"officeweb/internal/domain"
)

// InquiryConfig holds the addresses used in inquiry notifications.
type InquiryConfig struct {
	// NotifyEmail receives new-inquiry notifications; empty disables them.
	NotifyEmail string
	// SiteURL is the public base URL used for links in emails.
	SiteURL string
	// NotifyTimeout caps each notification send, retries included.
	NotifyTimeout time.Duration
}

// DefaultNotifyTimeout applies when InquiryConfig.NotifyTimeout is zero.
const DefaultNotifyTimeout = 3 * time.Second

type inquiryService struct {
	content domain.ContentBackend
	admin   domain.AdminBackend
	email   domain.EmailService
	config  InquiryConfig
	logger  *slog.Logger
}

// NewInquiryService returns an InquiryService. Notification failures are logged and never returned.
func NewInquiryService(content domain.ContentBackend, admin domain.AdminBackend, email domain.EmailService, config InquiryConfig, logger *slog.Logger) domain.InquiryService {
	config.SiteURL = strings.TrimRight(config.SiteURL, "/")
	if config.NotifyTimeout <= 0 {
		config.NotifyTimeout = DefaultNotifyTimeout
	}
	return &inquiryService{content: content, admin: admin, email: email, config: config, logger: logger}
}

func (s *inquiryService) Submit(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	if !in.IsSecret {
		in.SecretPassword = nil
	}
	created, err := s.content.CreateInquiry(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if s.config.NotifyEmail != "" {
		notifyCtx, cancel := context.WithTimeout(ctx, s.config.NotifyTimeout)
		defer cancel()
		err := s.email.SendInquiryReceived(notifyCtx, &domain.InquiryReceivedEmailData{
			To:        s.config.NotifyEmail,
			InquiryID: created.ID,
			Name:      in.Name,
			Contact:   in.Contact,
			Message:   in.Message,
			IsSecret:  in.IsSecret,
			AdminURL:  s.link("/admin/contacts/", created.ID),
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to notify office of inquiry", "inquiry_id", created.ID, "err", err)
		}
	}
	return created, nil
}

func (s *inquiryService) Open(ctx context.Context, id int64) (*domain.InquiryDetail, error) {
	return s.content.GetInquiry(ctx, id)
}

func (s *inquiryService) Verify(ctx context.Context, id int64, password string) (*domain.InquiryDetail, error) {
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}
	return s.content.VerifyInquiry(ctx, id, password)
}

func (s *inquiryService) Reply(ctx context.Context, sess *domain.AuthSession, id int64, in domain.ReplyInput) (*domain.InquiryDetail, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	detail, err := s.admin.ReplyInquiry(ctx, sess, id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to reply to inquiry: %w", err)
	}

	if domain.IsEmail(detail.Contact) {
		notifyCtx, cancel := context.WithTimeout(ctx, s.config.NotifyTimeout)
		defer cancel()
		err := s.email.SendInquiryReply(notifyCtx, &domain.InquiryReplyEmailData{
			To:        strings.TrimSpace(detail.Contact),
			Name:      detail.Name,
			Message:   detail.Message,
			Reply:     in.AdminReply,
			DetailURL: s.link("/contact/", detail.ID),
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to notify inquirer of reply", "inquiry_id", detail.ID, "err", err)
		}
	}
	return detail, nil
}

func (s *inquiryService) link(prefix string, id int64) string {
	if s.config.SiteURL == "" {
		return ""
	}
	return s.config.SiteURL + prefix + strconv.FormatInt(id, 10)
}
