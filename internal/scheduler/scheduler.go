package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendDueReminders(ctx context.Context) (int, error)
}

// Scheduler periodically mails reminders to holders of tickets for events
// that start soon.
type Scheduler struct {
	ticketService reminderSender
	interval      time.Duration
	logger        logger.Logger
}

func New(
	ticketService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.ticketService.SendDueReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("event reminders dispatched",
			logger.Int("count", sent),
		)
	}
}
