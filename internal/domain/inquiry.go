package domain

import (
	"context"
	"regexp"
	"strings"
)

const minSecretPasswordLen = 4

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(s))
}

// Inquiry is a row on the public inquiry board. Secret inquiries only show
// their masked name here.
// swagger:model Inquiry
type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsSecret  bool      `json:"is_secret"`
	HasReply  bool      `json:"has_reply"`
	CreatedAt Timestamp `json:"created_at"`
}

// InquiryDetail is the full inquiry, returned to admins and to visitors who
// passed the password check.
type InquiryDetail struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Contact       string     `json:"contact"`
	Message       string     `json:"message"`
	IsSecret      bool       `json:"is_secret"`
	AdminReply    *string    `json:"admin_reply"`
	ReplyIsPublic bool       `json:"reply_is_public"`
	RepliedAt     *Timestamp `json:"replied_at"`
	IsRead        bool       `json:"is_read"`
	CreatedAt     Timestamp  `json:"created_at"`
}

// HasReply reports whether the office has answered.
func (d *InquiryDetail) HasReply() bool {
	return d.AdminReply != nil && strings.TrimSpace(*d.AdminReply) != ""
}

// InquiryInput is what a visitor submits from the contact form.
type InquiryInput struct {
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	Message        string  `json:"message"`
	IsSecret       bool    `json:"is_secret"`
	SecretPassword *string `json:"secret_password,omitempty"`
}

// Validate implements Validator.
func (in InquiryInput) Validate() []string {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(in.Contact) == "" {
		errs = append(errs, "contact is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, "message is required")
	}
	if in.IsSecret {
		if in.SecretPassword == nil || len(*in.SecretPassword) < minSecretPasswordLen {
			errs = append(errs, "secret inquiries need a password of at least 4 characters")
		}
	}
	return errs
}

// ReplyInput is the admin's answer to an inquiry.
type ReplyInput struct {
	AdminReply    string `json:"admin_reply"`
	ReplyIsPublic bool   `json:"reply_is_public"`
}

// Validate implements Validator.
func (in ReplyInput) Validate() []string {
	if strings.TrimSpace(in.AdminReply) == "" {
		return []string{"admin_reply is required"}
	}
	return nil
}

// InquiryService runs the inquiry workflow: public submission with office
// notification, secret gating, and admin replies with inquirer notification.
type InquiryService interface {
	Submit(ctx context.Context, in InquiryInput) (*Inquiry, error)
	Open(ctx context.Context, id int64) (*InquiryDetail, error)
	Verify(ctx context.Context, id int64, password string) (*InquiryDetail, error)
	Reply(ctx context.Context, sess *AuthSession, id int64, in ReplyInput) (*InquiryDetail, error)
}
