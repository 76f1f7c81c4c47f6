// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueDailyReminder queues the reminder to record today's final balance.
func (s *Service) QueueDailyReminder(ctx context.Context, input adapter.QueueDailyReminderInput) error {
	subject := fmt.Sprintf("Profit Tracker Lembrete - %s", input.DashboardName)

	templateData := map[string]interface{}{
		"user_name":        input.UserName,
		"dashboard_name":   input.DashboardName,
		"date_key":         input.DateKey,
		"previous_balance": input.PreviousBalance,
		"dashboard_url":    input.DashboardURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateDailyReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue daily reminder email",
			err,
		)
	}

	return nil
}

var _ adapter.EmailService = (*Service)(nil)
