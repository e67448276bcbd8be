package ports

import (
	"context"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
)

type TicketRepo interface {
	// Reserve creates the ticket only if the event is published, the user
	// holds no ticket for it yet and capacity remains. All checks and the
	// insert run in one transaction.
	Reserve(ctx context.Context, t *domain.Ticket) error
	Cancel(ctx context.Context, ticketID, userID string) error
	CheckIn(ctx context.Context, ticketID string) error
	GetDetails(ctx context.Context, ticketID string) (*domain.TicketDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TicketDetails, error)
	MarkDueReminders(ctx context.Context, window time.Duration) ([]*domain.TicketDetails, error)
}
