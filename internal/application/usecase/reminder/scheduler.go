package reminder

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs reminder sweeps on a fixed interval.
type Scheduler struct {
	useCase      *SendDailyRemindersUseCase
	pollInterval time.Duration
}

// NewScheduler creates a new reminder scheduler.
func NewScheduler(useCase *SendDailyRemindersUseCase, pollInterval time.Duration) *Scheduler {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	return &Scheduler{
		useCase:      useCase,
		pollInterval: pollInterval,
	}
}

// Start runs sweeps until ctx is cancelled. It blocks, so callers run it in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Reminder scheduler started", "pollInterval", s.pollInterval)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// RunOnce runs a single sweep synchronously.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.sweep(ctx)
}

func (s *Scheduler) sweep(ctx context.Context) {
	output, err := s.useCase.Execute(ctx, SendDailyRemindersInput{})
	if err != nil {
		slog.Error("Reminder sweep failed", "error", err)
		return
	}
	if output.Queued > 0 {
		slog.Debug("Reminder sweep finished", "checked", output.Checked, "queued", output.Queued)
	}
}
