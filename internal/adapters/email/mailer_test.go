package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "noop", config: MailerConfig{Provider: "noop"}, wantNoop: true},
		{name: "empty", config: MailerConfig{}, wantNoop: true},
		{name: "unknown", config: MailerConfig{Provider: "smtp"}, wantNoop: true},
		{name: "ses", config: MailerConfig{Provider: "ses", FromAddress: "office@example.com", SES: SESConfig{Region: "ap-northeast-2"}}},
		{name: "ses without from", config: MailerConfig{Provider: "ses"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSES{}
	m := &sesMailer{client: fake, fromAddress: "office@example.com", fromName: "Office", logger: discardLogger()}

	err := m.Send(context.Background(), "kim@example.com", "Hello", "<p>hi</p>", "")
	require.NoError(t, err)
	require.NotNil(t, fake.input)
	assert.Equal(t, "Office <office@example.com>", aws.ToString(fake.input.Source))
	assert.Equal(t, []string{"kim@example.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "Hello", aws.ToString(fake.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(fake.input.Message.Body.Html.Data))
	assert.Nil(t, fake.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	m := &sesMailer{client: &fakeSES{err: errors.New("throttled")}, fromAddress: "office@example.com", logger: discardLogger()}
	err := m.Send(context.Background(), "kim@example.com", "s", "", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
