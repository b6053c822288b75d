package email

import (
	"context"
	"fmt"

	"github.com/latadairy/dairy_backend/internal/apperrors"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend API. A sender constructed
// with an empty API key is valid but refuses to send, so the rest of the
// application keeps working without email configured.
type ResendSender struct {
	client      *resend.Client
	senderEmail string
}

func NewResendSender(apiKey, senderEmail string) *ResendSender {
	s := &ResendSender{senderEmail: senderEmail}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

var _ portssvc.EmailSender = (*ResendSender)(nil)

// Send delivers a single HTML email and returns the provider message ID.
func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if s.client == nil {
		return "", apperrors.ErrEmailNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Lata Dairy <%s>", s.senderEmail),
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via resend: %w", err)
	}
	return sent.Id, nil
}
