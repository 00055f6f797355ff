package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"officeweb/internal/adapters/email"
	"officeweb/internal/domain"
)

// RetryPolicy controls how often a failed send is retried.
type RetryPolicy struct {
	Attempts uint
	Delay    time.Duration
}

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	retry    RetryPolicy
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, policy RetryPolicy, logger *slog.Logger) domain.EmailService {
	if policy.Attempts == 0 {
		policy.Attempts = 1
	}
	return &emailService{mailer: mailer, renderer: renderer, retry: policy, logger: logger}
}

// SendInquiryReceived tells the office about a new inquiry using the "inquiry_received" template.
func (s *emailService) SendInquiryReceived(ctx context.Context, data *domain.InquiryReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("inquiry received data is nil")
	}
	return s.send(ctx, email.TemplateInquiryReceived, data.To, data)
}

// SendInquiryReply tells the inquirer about the office's answer using the "inquiry_reply" template.
func (s *emailService) SendInquiryReply(ctx context.Context, data *domain.InquiryReplyEmailData) error {
	if data == nil {
		return fmt.Errorf("inquiry reply data is nil")
	}
	return s.send(ctx, email.TemplateInquiryReply, data.To, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s email has no recipient", template)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	err = retry.Do(
		func() error {
			return s.mailer.Send(ctx, to, subject, htmlBody, textBody)
		},
		retry.Context(ctx),
		retry.Attempts(s.retry.Attempts),
		retry.Delay(s.retry.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.logger.WarnContext(ctx, "email send failed, retrying", "template", template, "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template, "to", to)
	return nil
}
