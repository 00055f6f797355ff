package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"unicode/utf8"

	"officeweb/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Template names understood by the renderer.
const (
	TemplateInquiryReceived = "inquiry_received"
	TemplateInquiryReply    = "inquiry_reply"
)

// subjectMaxRunes caps the message excerpt placed in subjects and previews.
const subjectMaxRunes = 60

// inquiryTemplate is one email: a subject line plus html and text bodies,
// and a check that the data handed to Render has the right type.
type inquiryTemplate struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	text    *texttemplate.Template
	accepts func(data any) bool
}

// TemplateRenderer renders the inquiry emails from the embedded templates.
type TemplateRenderer struct {
	templates map[string]inquiryTemplate
}

var _ domain.EmailTemplateRenderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses every inquiry template up front, so a broken
// template stops startup rather than the first notification.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{templates: make(map[string]inquiryTemplate)}
	kinds := map[string]func(any) bool{
		TemplateInquiryReceived: func(data any) bool {
			d, ok := data.(*domain.InquiryReceivedEmailData)
			return ok && d != nil
		},
		TemplateInquiryReply: func(data any) bool {
			d, ok := data.(*domain.InquiryReplyEmailData)
			return ok && d != nil
		},
	}
	for name, accepts := range kinds {
		t, err := parseInquiryTemplate(name)
		if err != nil {
			return nil, err
		}
		t.accepts = accepts
		r.templates[name] = t
	}
	return r, nil
}

func parseInquiryTemplate(name string) (inquiryTemplate, error) {
	var t inquiryTemplate
	var err error
	if t.subject, err = texttemplate.New(name+"_subject.txt").Funcs(textFuncs).ParseFS(templateFS, "templates/"+name+"_subject.txt"); err != nil {
		return t, fmt.Errorf("parse %s subject: %w", name, err)
	}
	if t.html, err = htmltemplate.New(name+".html").Funcs(htmltemplate.FuncMap(textFuncs)).ParseFS(templateFS, "templates/"+name+".html"); err != nil {
		return t, fmt.Errorf("parse %s html: %w", name, err)
	}
	if t.text, err = texttemplate.New(name+".txt").Funcs(textFuncs).ParseFS(templateFS, "templates/"+name+".txt"); err != nil {
		return t, fmt.Errorf("parse %s text: %w", name, err)
	}
	return t, nil
}

var textFuncs = texttemplate.FuncMap{
	"excerpt": func(s string) string { return excerpt(s, subjectMaxRunes) },
	"quote":   quote,
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

// excerpt collapses whitespace in s and cuts it to n runes.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}

// quote prefixes every line of s with "> ".
func quote(s string) string {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("> "+l, " ")
	}
	return strings.Join(lines, "\n")
}

// Render executes the named template with data and returns subject, html
// and text bodies. data must be the email data type the template is for.
func (r *TemplateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	t, ok := r.templates[templateName]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}
	if !t.accepts(data) {
		return "", "", "", fmt.Errorf("email template %s cannot render %T", templateName, data)
	}

	var buf bytes.Buffer
	if err := t.subject.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	// Subjects are single-line headers.
	subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := t.html.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := t.text.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
