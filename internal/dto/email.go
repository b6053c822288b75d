package dto

// SendEmailRequest defines the payload for the generic email endpoint.
type SendEmailRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Subject        string `json:"subject" binding:"required"`
	HTMLContent    string `json:"html_content" binding:"required"`
}

// SendBillEmailRequest defines the payload for emailing a bill statement.
type SendBillEmailRequest struct {
	BillID         string `json:"bill_id" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
}

// EmailSentResponse reports a successful dispatch.
type EmailSentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	EmailID string `json:"email_id"`
}
