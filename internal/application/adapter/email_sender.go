package adapter

import (
	"context"
)

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
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueDailyReminder queues the reminder to record today's closing balance.
	QueueDailyReminder(ctx context.Context, input QueueDailyReminderInput) error
}

// QueueDailyReminderInput represents the input for queueing a daily reminder email.
type QueueDailyReminderInput struct {
	UserEmail       string
	UserName        string
	DashboardName   string
	DateKey         string
	PreviousBalance string
	DashboardURL    string
}
