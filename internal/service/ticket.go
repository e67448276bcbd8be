package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type TicketService struct {
	ticketRepo     ports.TicketRepo
	notifier       ports.TicketNotifier
	reminderWindow time.Duration
	detailsRetry   retry.Strategy
	logger         logger.Logger
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	notifier ports.TicketNotifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo:     ticketRepo,
		notifier:       notifier,
		reminderWindow: reminderWindow,
		detailsRetry: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
}

// Book reserves one ticket for the user on the event. Capacity and
// per-user uniqueness are enforced by the repository in one transaction;
// the confirmation email goes out on a detached goroutine and its outcome
// never affects the booking.
func (s *TicketService) Book(ctx context.Context, eventID, userID string) (*domain.TicketDetails, error) {
	ticket := &domain.Ticket{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ticketRepo.Reserve(ctx, ticket); err != nil {
		return nil, fmt.Errorf("reserve ticket: %w", err)
	}

	s.logger.Info("ticket booked",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	details, err := s.ticketRepo.GetDetails(ctx, ticket.ID)
	if err != nil {
		// The reservation itself committed; report it without the joins and
		// keep retrying the read off-request so the confirmation email still
		// goes out.
		s.logger.Error("failed to load booked ticket details",
			logger.String("ticket_id", ticket.ID),
			logger.String("error", err.Error()),
		)
		go s.notifyBookedLater(context.WithoutCancel(ctx), ticket.ID)
		return &domain.TicketDetails{Ticket: *ticket}, nil
	}

	go s.notifier.NotifyTicketBooked(context.WithoutCancel(ctx), details)

	return details, nil
}

func (s *TicketService) notifyBookedLater(ctx context.Context, ticketID string) {
	var details *domain.TicketDetails
	err := retry.Do(func() error {
		var err error
		details, err = s.ticketRepo.GetDetails(ctx, ticketID)
		return err
	}, s.detailsRetry)
	if err != nil {
		s.logger.Error("confirmation email dropped",
			logger.String("ticket_id", ticketID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyTicketBooked(ctx, details)
}

func (s *TicketService) Cancel(ctx context.Context, ticketID, userID string) error {
	if err := s.ticketRepo.Cancel(ctx, ticketID, userID); err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", ticketID),
		logger.String("user_id", userID),
	)

	return nil
}

func (s *TicketService) CheckIn(ctx context.Context, ticketID string) error {
	if err := s.ticketRepo.CheckIn(ctx, ticketID); err != nil {
		return fmt.Errorf("check in ticket: %w", err)
	}

	s.logger.Info("ticket checked in",
		logger.String("ticket_id", ticketID),
	)

	return nil
}

func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]*domain.TicketDetails, error) {
	return s.ticketRepo.ListByUser(ctx, userID)
}

// GetForOwner loads ticket details for QR and PDF rendering; only the
// holder may see them.
func (s *TicketService) GetForOwner(ctx context.Context, ticketID, userID string) (*domain.TicketDetails, error) {
	details, err := s.ticketRepo.GetDetails(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if details.Ticket.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return details, nil
}

// SendDueReminders mails holders of tickets for events starting within the
// reminder window. Called periodically by the scheduler.
func (s *TicketService) SendDueReminders(ctx context.Context) (int, error) {
	due, err := s.ticketRepo.MarkDueReminders(ctx, s.reminderWindow)
	if err != nil {
		return 0, fmt.Errorf("mark due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("event reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return len(due), nil
}

func (s *TicketService) notifyReminders(ctx context.Context, due []*domain.TicketDetails) {
	for _, d := range due {
		s.notifier.NotifyEventReminder(ctx, d)
	}
}
