package services

import (
	"context"
	"fmt"

	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
)

// EmailService sends caller-composed HTML emails.
type EmailService struct {
	sender portssvc.EmailSender
}

func NewEmailService(sender portssvc.EmailSender) *EmailService {
	return &EmailService{sender: sender}
}

func (s *EmailService) SendEmail(ctx context.Context, recipient, subject, htmlContent string) (string, error) {
	messageID, err := s.sender.Send(ctx, recipient, subject, htmlContent)
	if err != nil {
		return "", fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}
	return messageID, nil
}
