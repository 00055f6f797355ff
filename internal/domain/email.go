package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InquiryReceivedEmailData tells the office a new inquiry arrived.
type InquiryReceivedEmailData struct {
	To        string
	InquiryID int64
	Name      string
	Contact   string
	Message   string
	IsSecret  bool
	AdminURL  string
}

// InquiryReplyEmailData tells an inquirer the office answered.
type InquiryReplyEmailData struct {
	To        string
	Name      string
	Message   string
	Reply     string
	DetailURL string
}

// EmailService sends the site's notification emails.
type EmailService interface {
	SendInquiryReceived(ctx context.Context, data *InquiryReceivedEmailData) error
	SendInquiryReply(ctx context.Context, data *InquiryReplyEmailData) error
}
