package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const defaultHost = "https://api.sendgrid.com"

// Service sends email through the SendGrid v3 mail API
type Service struct {
	APIKey    string
	FromEmail string
	FromName  string
	Host      string // overridable for tests
}

func NewService(apiKey, fromEmail, fromName string) *Service {
	return &Service{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		FromName:  fromName,
		Host:      defaultHost,
	}
}

// Attachment is an optional file attached to an outgoing message
type Attachment struct {
	Content  []byte
	Filename string
	Type     string
}

// Send dispatches one message to all recipients in a single API call.
// Every recipient is a direct To address on the same personalization,
// so the whole batch either succeeds or fails together.
func (s *Service) Send(ctx context.Context, recipients []string, subject, body string, attachment *Attachment) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if s.FromEmail == "" {
		return fmt.Errorf("sender address is not configured")
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(s.FromName, s.FromEmail))
	m.Subject = subject

	p := mail.NewPersonalization()
	for _, r := range recipients {
		p.AddTos(mail.NewEmail("", r))
	}
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/plain", body))

	if attachment != nil {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(attachment.Content))
		a.SetType(attachment.Type)
		a.SetFilename(attachment.Filename)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}

	request := sendgrid.GetRequest(s.APIKey, "/v3/mail/send", s.Host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid API error (%d): %s", response.StatusCode, response.Body)
	}

	return nil
}
