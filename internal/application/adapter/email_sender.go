package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueuePasswordResetInput represents the input for queueing a password
// reset code email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	Code      string
	ExpiresIn string
}

// EmailService defines the interface for queueing outbound email. Queued
// emails are delivered asynchronously by a background worker.
type EmailService interface {
	// QueuePasswordResetCode queues a password reset code email.
	QueuePasswordResetCode(ctx context.Context, input QueuePasswordResetInput) error
}
