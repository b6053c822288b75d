package services

import "context"

// EmailSender is the outbound port to the email delivery provider.
// Implementations return the provider-assigned message ID on success.
// Delivery failures are surfaced, never retried.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

// EmailSvcFacade defines the generic email operation exposed to handlers.
type EmailSvcFacade interface {
	SendEmail(ctx context.Context, recipient, subject, htmlContent string) (string, error)
}
